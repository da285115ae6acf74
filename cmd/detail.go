package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/kakeibo"
	"github.com/etnz/kakeibo/renderer"
	"github.com/google/subcommands"
)

type detailCmd struct{}

func (*detailCmd) Name() string     { return "detail" }
func (*detailCmd) Synopsis() string { return "show every field of an entry" }
func (*detailCmd) Usage() string {
	return `kb --asset-file <file> detail <id>

  Prints the item, money, description, creation and update times of the entry.
`
}

func (*detailCmd) SetFlags(f *flag.FlagSet) {}

func (c *detailCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts, status := ledgerOptions(args)
	if status != subcommands.ExitSuccess {
		return status
	}
	if f.NArg() != 1 {
		opts.errorf("detail expects <id>, got %d arguments", f.NArg())
		return subcommands.ExitUsageError
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		opts.errorf("%v", err)
		return subcommands.ExitUsageError
	}

	item, err := opts.store().Find(id)
	if errors.Is(err, kakeibo.ErrNotFound) {
		opts.errorf("item %d not found in %s", id, opts.AssetFile)
		return subcommands.ExitFailure
	}
	if err != nil {
		return opts.fail("read item", err)
	}

	opts.printMarkdown(renderer.Detail(item, opts.Currency))
	return subcommands.ExitSuccess
}
