// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/kakeibo"
	"github.com/etnz/kakeibo/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Options are the global settings passed to every command through
// subcommands.Commander.Execute.
type Options struct {
	AssetFile string           // ledger file, required by ledger commands
	Currency  kakeibo.Currency // how amounts are parsed and printed
	Plain     bool             // print raw markdown
	Stdout    io.Writer        // defaults to os.Stdout
	Stderr    io.Writer        // defaults to os.Stderr
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

func (o Options) errorf(format string, args ...any) {
	fmt.Fprintf(o.stderr(), "Error: "+format+"\n", args...)
}

// commands returns the ledger commands, in help order.
func commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&removeCmd{},
		&updateCmd{},
		&listCmd{},
		&detailCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd, "ledger")
	}
	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// Completion returns the shell completion tree of the application.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, cmd := range commands() {
		sub[cmd.Name()] = &complete.Command{Args: predict.Nothing}
	}
	topics, err := docs.Topics()
	if err != nil {
		slog.Debug("cannot list topics for completion", "error", err)
	}
	sub["topic"] = &complete.Command{Args: predict.Set(topics)}
	sub["help"] = &complete.Command{Args: predict.Set(names(sub))}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"asset-file": predict.Files("*.json"),
			"a":          predict.Files("*.json"),
			"currency":   predict.Set{"JPY", "EUR", "USD", "GBP", "CHF", "CNY", "KRW"},
			"plain":      predict.Nothing,
			"verbose":    predict.Nothing,
		},
	}
}

func names(m map[string]*complete.Command) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	return out
}

// ledgerOptions extracts the Options from the Execute arguments.
// It reports a usage error when the asset file is missing.
func ledgerOptions(args []any) (Options, subcommands.ExitStatus) {
	var opts Options
	found := false
	for _, arg := range args {
		if o, ok := arg.(Options); ok {
			opts, found = o, true
			break
		}
	}
	if !found {
		opts.errorf("no options passed to the command")
		return opts, subcommands.ExitFailure
	}
	if opts.AssetFile == "" {
		opts.errorf("missing required option --asset-file")
		return opts, subcommands.ExitUsageError
	}
	return opts, subcommands.ExitSuccess
}

// store opens the ledger store of the asset file.
func (o Options) store() *kakeibo.Store {
	return kakeibo.NewStore(o.AssetFile)
}

// fail reports a store error and returns the matching exit status.
func (o Options) fail(action string, err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		o.errorf("asset file %q does not exist", o.AssetFile)
	default:
		o.errorf("could not %s: %v", action, err)
	}
	return subcommands.ExitFailure
}

// parseID parses a positional item id.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q: must be a positive integer", s)
	}
	return uint(id), nil
}

// printMarkdown prints markdown content, rendered for the terminal unless Plain is set.
func (o Options) printMarkdown(content string) {
	if o.Plain {
		fmt.Fprint(o.stdout(), content)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var rendered string
		if rendered, err = r.Render(content); err == nil {
			fmt.Fprint(o.stdout(), rendered)
			return
		}
	}
	slog.Debug("cannot render markdown, printing it raw", "error", err)
	fmt.Fprint(o.stdout(), content)
}
