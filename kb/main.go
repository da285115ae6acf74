// Command kb is a household account book kept in a JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/kakeibo"
	"github.com/etnz/kakeibo/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	// Exits when invoked by the shell to complete a command line.
	cmd.Completion().Complete(name)

	os.Exit(int(run(context.Background(), name, os.Args[1:], os.Stdout, os.Stderr)))
}

// run parses the global flags in args and executes the selected command.
func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) subcommands.ExitStatus {
	top := flag.NewFlagSet(name, flag.ContinueOnError)
	top.SetOutput(stderr)
	var (
		assetFile string
		currency  string
		plain     bool
		verbose   bool
	)
	top.StringVar(&assetFile, "asset-file", "", "Path to the ledger file (JSON). Required by ledger commands.")
	top.StringVar(&assetFile, "a", "", "Shorthand for -asset-file.")
	top.StringVar(&currency, "currency", "", "ISO 4217 currency used to parse and print amounts, e.g. JPY or EUR. Plain integers when empty.")
	top.BoolVar(&plain, "plain", false, "Print raw markdown instead of rendering it for the terminal.")
	top.BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr.")

	commander := subcommands.NewCommander(top, name)
	commander.Output, commander.Error = stdout, stderr
	cmd.Register(commander)
	if err := top.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cur, err := kakeibo.ParseCurrency(currency)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	opts := cmd.Options{
		AssetFile: assetFile,
		Currency:  cur,
		Plain:     plain,
		Stdout:    stdout,
		Stderr:    stderr,
	}
	return commander.Execute(ctx, opts)
}
