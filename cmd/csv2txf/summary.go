package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tirasundara/csv2txf/internal/config"
	"github.com/tirasundara/csv2txf/internal/report"
)

// summaryCmd prints the gains and losses summary of a broker export.
type summaryCmd struct {
	convertCmd
	beginDate string
	endDate   string
}

func newSummaryCmd(cfg *config.Config) *summaryCmd {
	return &summaryCmd{convertCmd: *newConvertCmd(cfg)}
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print a gains and losses summary of a broker export" }
func (*summaryCmd) Usage() string {
	return `csv2txf summary -f <file> [-broker <name>] [-o <file>] [-year <year>] [-begin-date MM/DD/YYYY] [-end-date MM/DD/YYYY]

  Totals cost, proceeds, adjustments and net gain or loss of the lots sold
  between the begin and end dates, both inclusive. The dates default to the
  first and last day of the tax year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.setFlags(f, c.cfg)
	f.StringVar(&c.beginDate, "begin-date", "", "First sale date included (MM/DD/YYYY)")
	f.StringVar(&c.endDate, "end-date", "", "Last sale date included (MM/DD/YYYY)")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	begin, err := parseFlagDate(c.beginDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing begin date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := parseFlagDate(c.endDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !begin.IsZero() && !end.IsZero() && end.Before(begin) {
		fmt.Fprintf(os.Stderr, "Error: end date %s is before begin date %s\n", c.endDate, c.beginDate)
		return subcommands.ExitUsageError
	}

	return c.execute(ctx, report.NewSummaryFormatter(begin, end))
}
