package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/constituents"
	"github.com/etnz/constituents/renderer"
	"github.com/google/subcommands"
)

// mergeCmd holds the flags for the 'merge' subcommand.
type mergeCmd struct {
	pattern string
	strict  bool
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "merge pending snapshot files into the table" }
func (*mergeCmd) Usage() string {
	return `cst merge [-p <pattern>]

  Merges every snapshot file in the snapshot directory into the
  constituents table, one date column per snapshot. Dates already in the
  table are skipped, so re-merging is always safe. The table file must
  already exist.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pattern, "p", constituents.SnapshotPattern, "Glob pattern selecting the snapshot files.")
	f.BoolVar(&c.strict, "strict", false, "Fail when any snapshot file cannot be merged.")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		return subcommands.ExitFailure
	}

	results, changed, err := constituents.MergeDir(t, *snapshotDir, c.pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error merging snapshots: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MergeMarkdown(results))

	if c.strict {
		if err := constituents.Failures(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if !changed {
		fmt.Println("No changes made.")
		return subcommands.ExitSuccess
	}
	if err := SaveTable(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully updated %s: %d tickers over %d dates\n", *tableFile, t.Len(), len(t.Dates()))
	return subcommands.ExitSuccess
}
