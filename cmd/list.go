package cmd

import (
	"context"
	"flag"

	"github.com/etnz/kakeibo/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all entries of the ledger" }
func (*listCmd) Usage() string {
	return `kb --asset-file <file> list

  Prints the id, item and money of every entry, and the total.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts, status := ledgerOptions(args)
	if status != subcommands.ExitSuccess {
		return status
	}
	if f.NArg() != 0 {
		opts.errorf("list takes no arguments, got %d", f.NArg())
		return subcommands.ExitUsageError
	}

	items, err := opts.store().Load()
	if err != nil {
		return opts.fail("list items", err)
	}

	opts.printMarkdown(renderer.List(items, opts.Currency))
	return subcommands.ExitSuccess
}
