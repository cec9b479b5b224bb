// Command csv2txf converts brokerage capital-gains exports to TXF for import
// into tax software, or prints a gains and losses summary for a tax year.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/tirasundara/csv2txf/internal/config"
	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewFromConfig(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := domain.ValidateEntryCodes(); err != nil {
		exitWithError(fmt.Sprintf("Invalid TXF entry code table: %v", err))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(newConvertCmd(cfg), "")
	commander.Register(newSummaryCmd(cfg), "")
	commander.Register(&brokersCmd{out: os.Stdout}, "")

	flag.Parse()

	ctx := logger.WithContext(context.Background(), log)
	os.Exit(int(commander.Execute(ctx)))
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
