package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tvm/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the manual" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString(`tvm topic [<topic>...]

  Prints the manual pages of the given topics, "*" for all of them, or the
  readme when there is none.

Topics:
`)
	index, err := docs.Index()
	if err != nil {
		logger.Warn().Err(err).Msg("cannot read topics")
	}
	for _, t := range index {
		fmt.Fprintf(&b, "  %-10s %s\n", t.Name, t.Summary)
	}
	b.WriteString("\n")
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return failure(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
