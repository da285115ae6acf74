package cmd

import (
	"context"
	"flag"

	"github.com/etnz/kakeibo/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `kb topic [<topic>...]

  Shows the documentation of the given topics, the overview by default.
  Use '*' to show every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	// The topic command does not need an asset file.
	var opts Options
	for _, arg := range args {
		if o, ok := arg.(Options); ok {
			opts = o
		}
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		opts.errorf("could not read documentation: %v", err)
		return subcommands.ExitFailure
	}
	opts.printMarkdown(doc)

	return subcommands.ExitSuccess
}
