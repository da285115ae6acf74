package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/kakeibo"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an entry from the ledger" }
func (*removeCmd) Usage() string {
	return `kb --asset-file <file> remove <id>

  Deletes the entry with that id. Other entries keep their ids.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts, status := ledgerOptions(args)
	if status != subcommands.ExitSuccess {
		return status
	}
	if f.NArg() != 1 {
		opts.errorf("remove expects <id>, got %d arguments", f.NArg())
		return subcommands.ExitUsageError
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		opts.errorf("%v", err)
		return subcommands.ExitUsageError
	}

	item, err := opts.store().Remove(id)
	if errors.Is(err, kakeibo.ErrInvalidID) {
		opts.errorf("invalid item id %d", id)
		return subcommands.ExitFailure
	}
	if err != nil {
		return opts.fail("remove item", err)
	}

	fmt.Fprintf(opts.stdout(), "Removed item %d (%s) from %s\n", item.ID, item.Label, opts.AssetFile)
	return subcommands.ExitSuccess
}
