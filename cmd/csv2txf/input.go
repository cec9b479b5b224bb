package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/tirasundara/csv2txf/internal/broker"
	"github.com/tirasundara/csv2txf/internal/config"
	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/logger"
	"github.com/tirasundara/csv2txf/internal/report"
	"github.com/tirasundara/csv2txf/internal/service"
	"github.com/tirasundara/csv2txf/internal/txf"
)

// inputFlags are the flags shared by the convert and summary subcommands
type inputFlags struct {
	file    string
	broker  string
	outFile string
	year    int

	out io.Writer // stdout when outFile is empty
}

func (in *inputFlags) setFlags(f *flag.FlagSet, cfg *config.Config) {
	f.StringVar(&in.file, "f", "", "Input file (required)")
	f.StringVar(&in.broker, "broker", cfg.Broker, "Broker name, detected from the file when empty. See 'brokers'.")
	f.StringVar(&in.outFile, "o", "", "Output file, leave empty for stdout. The format's extension is added when missing")
	f.IntVar(&in.year, "year", time.Now().Year()-1, "Tax year, 0 keeps every year")
}

func (in *inputFlags) validate() error {
	if in.file == "" {
		return fmt.Errorf("input file (-f) is required")
	}
	if in.year < 0 {
		return fmt.Errorf("invalid tax year %d", in.year)
	}
	return nil
}

// run converts the input file, formats it and writes the result.
// The output is only written once the whole file converted successfully.
func (in *inputFlags) run(ctx context.Context, formatter report.OutputFormatter) error {
	svc := service.NewConversionService(broker.NewRegistry())

	conv, err := svc.Convert(ctx, service.ConversionRequest{
		Path:    in.file,
		Broker:  in.broker,
		TaxYear: in.year,
	})
	if err != nil {
		return err
	}

	output, err := formatter.Format(conv)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if in.outFile == "" {
		_, err := fmt.Fprintln(in.out, string(output))
		return err
	}

	outFile := in.outFile
	if filepath.Ext(outFile) == "" {
		outFile = fmt.Sprintf("%s.%s", outFile, formatter.FileExtension())
	}

	if err := writeFileAtomic(outFile, output); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("output", outFile).Msg("output written")
	return nil
}

// parseFlagDate parses a MM/DD/YYYY command line date, an empty value gives the zero time
func parseFlagDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := broker.ParseDate(value, txf.DateLayout)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want MM/DD/YYYY: %w", value, err)
	}
	return d, nil
}

// usageHint returns extra guidance for errors the user can fix from the command line
func usageHint(err error) string {
	var recognitionErr *domain.FormatRecognitionError
	if errors.As(err, &recognitionErr) {
		return "Use -broker to name the export format, 'brokers' lists them."
	}
	return ""
}
