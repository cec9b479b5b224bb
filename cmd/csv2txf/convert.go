package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tirasundara/csv2txf/internal/config"
	"github.com/tirasundara/csv2txf/internal/logger"
	"github.com/tirasundara/csv2txf/internal/report"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	inputFlags
	cfg    *config.Config
	date   string
	format string
}

func newConvertCmd(cfg *config.Config) *convertCmd {
	return &convertCmd{cfg: cfg, inputFlags: inputFlags{out: os.Stdout}}
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a broker export to TXF" }
func (*convertCmd) Usage() string {
	return `csv2txf convert -f <file> [-broker <name>] [-o <file>] [-year <year>] [-date MM/DD/YYYY] [-format txf|json]

  Converts the capital gains lots sold in the tax year to TXF records.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.setFlags(f, c.cfg)
	f.StringVar(&c.date, "date", "", "Export date written in the TXF header (MM/DD/YYYY), defaults to today")
	f.StringVar(&c.format, "format", "txf", "Output format: txf or json")
}

func (c *convertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	exportDate, err := parseFlagDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing export date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var formatter report.OutputFormatter
	switch c.format {
	case "txf":
		formatter = report.NewTXFFormatter(exportDate)
	case "json":
		formatter = report.NewJSONFormatter(true)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported output format: %s\n", c.format)
		return subcommands.ExitUsageError
	}

	return c.execute(ctx, formatter)
}

func (c *convertCmd) execute(ctx context.Context, formatter report.OutputFormatter) subcommands.ExitStatus {
	if err := c.run(ctx, formatter); err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Str("file", c.file).Msg("conversion failed")
		if hint := usageHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
