// Package cmd implements the tvm command-line application: one subcommand per
// time value of money computation, printing markdown reports or JSON.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	// Raw prints markdown as is, without terminal styling.
	Raw = flag.Bool("raw", false, "print markdown without terminal styling")
	// Verbose turns on debug logs.
	Verbose = flag.Bool("v", false, "verbose logs on stderr")
)

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands returns every tvm subcommand with its group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"loans": {
			&paymentCmd{},
			&scheduleCmd{},
			&balanceCmd{},
		},
		"values": {
			&pvCmd{},
			&fvCmd{},
			&annuityCmd{future: true},
			&annuityCmd{},
			&interestCmd{},
			&compoundCmd{},
			&earCmd{},
		},
		"cash flows": {
			&npvCmd{},
			&irrCmd{},
			&xirrCmd{},
		},
		"calendar": {
			&bizdaysCmd{},
			&addbizdaysCmd{},
			&adjustCmd{},
			&yearfracCmd{},
		},
		"help": {
			&topicCmd{},
		},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	groups := Commands()
	for _, group := range slices.Sorted(maps.Keys(groups)) {
		for _, cmd := range groups[group] {
			c.Register(cmd, group)
		}
	}
}

// printMarkdown renders md for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *Raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Warn().Err(err).Msg("cannot style markdown")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot style markdown")
		out = md
	}
	fmt.Fprint(stdout, out)
}

// printJSON prints v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// usageError reports an invalid flag or argument.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// failure reports a computation that could not complete.
func failure(err error) subcommands.ExitStatus {
	logger.Debug().Err(err).Msg("command failed")
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
