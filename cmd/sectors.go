package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/etnz/constituents"
	"github.com/etnz/constituents/renderer"
	"github.com/google/subcommands"
)

// sectorsCmd holds the flags for the 'sectors' subcommand.
type sectorsCmd struct {
	file string
}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "break a snapshot down by sector" }
func (*sectorsCmd) Usage() string {
	return `cst sectors [-f <snapshot>]

  Groups a snapshot's holdings by sector, heaviest first. Defaults to
  the most recent snapshot file in the snapshot directory. Sectors come
  from the snapshot, not the table: sources that do not publish them
  aggregate under Unknown.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Snapshot file to break down. Defaults to the most recent one.")
}

func (c *sectorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file := c.file
	if file == "" {
		var err error
		file, err = latestSnapshot(*snapshotDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s, err := constituents.DecodeSnapshotFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SectorsMarkdown(s, s.SectorBreakdown()))
	return subcommands.ExitSuccess
}

// latestSnapshot returns the lexically last snapshot file in dir, which is
// the most recent one given the canonical date-stamped naming.
func latestSnapshot(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, constituents.SnapshotPattern))
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %q", constituents.ErrNoSnapshots, dir)
	}
	sort.Strings(files)
	return files[len(files)-1], nil
}
