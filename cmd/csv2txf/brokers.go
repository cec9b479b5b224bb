package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/tirasundara/csv2txf/internal/broker"
)

type brokersCmd struct {
	out io.Writer
}

func (*brokersCmd) Name() string     { return "brokers" }
func (*brokersCmd) Synopsis() string { return "list the supported broker export formats" }
func (*brokersCmd) Usage() string {
	return `csv2txf brokers

  Lists the broker names accepted by -broker, in detection order.
`
}

func (*brokersCmd) SetFlags(*flag.FlagSet) {}

func (c *brokersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, name := range broker.NewRegistry().Names() {
		fmt.Fprintln(c.out, name)
	}
	return subcommands.ExitSuccess
}
