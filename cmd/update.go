package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change an entry of the ledger" }
func (*updateCmd) Usage() string {
	return `kb --asset-file <file> update <id> <item> <money> <description>

  Replaces the item, money and description of the entry with that id.
  The id and the creation time are kept. An unknown id changes nothing.
`
}

func (*updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts, status := ledgerOptions(args)
	if status != subcommands.ExitSuccess {
		return status
	}
	if f.NArg() != 4 {
		opts.errorf("update expects <id> <item> <money> <description>, got %d arguments", f.NArg())
		return subcommands.ExitUsageError
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		opts.errorf("%v", err)
		return subcommands.ExitUsageError
	}
	amount, err := opts.Currency.ParseAmount(f.Arg(2))
	if err != nil {
		opts.errorf("%v", err)
		return subcommands.ExitUsageError
	}

	_, found, err := opts.store().Update(id, f.Arg(1), amount, f.Arg(3))
	if err != nil {
		return opts.fail("update item", err)
	}
	if !found {
		slog.Debug("update matched no item", "id", id, "file", opts.AssetFile)
		fmt.Fprintf(opts.stderr(), "Warning: no item with id %d in %s, nothing updated\n", id, opts.AssetFile)
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(opts.stdout(), "Updated item %d in %s\n", id, opts.AssetFile)
	return subcommands.ExitSuccess
}
