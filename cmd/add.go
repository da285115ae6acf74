package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new entry to the ledger" }
func (*addCmd) Usage() string {
	return `kb --asset-file <file> add <item> <money> <description>

  Appends a new entry and prints its id. The asset file is created if needed.

Usage Examples:
$ kb --asset-file assets.json add Coffee 350 "morning coffee"

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts, status := ledgerOptions(args)
	if status != subcommands.ExitSuccess {
		return status
	}
	if f.NArg() != 3 {
		opts.errorf("add expects <item> <money> <description>, got %d arguments", f.NArg())
		return subcommands.ExitUsageError
	}

	amount, err := opts.Currency.ParseAmount(f.Arg(1))
	if err != nil {
		opts.errorf("%v", err)
		return subcommands.ExitUsageError
	}

	item, err := opts.store().Append(f.Arg(0), amount, f.Arg(2))
	if err != nil {
		return opts.fail("add item", err)
	}

	fmt.Fprintf(opts.stdout(), "Added item %d to %s\n", item.ID, opts.AssetFile)
	return subcommands.ExitSuccess
}
