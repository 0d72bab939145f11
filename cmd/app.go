// Package cmd implements the CLI application to track ETF constituents.
package cmd

import (
	"flag"

	"github.com/etnz/constituents"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the cst CLI. A main package registers
// them on its commander and uses the list for completion and extension
// dispatch.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&mergeCmd{},
	&summaryCmd{},
	&topCmd{},
	&sectorsCmd{},
	&historyCmd{},
	&quoteCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Names returns the names of all built-in subcommands.
func Names() []string {
	names := make([]string, 0, len(Commands))
	for _, cmd := range Commands {
		names = append(names, cmd.Name())
	}
	return names
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tableFile = flag.String("table-file", "constituents.csv", "Path to the wide constituents table (CSV format)")
var snapshotDir = flag.String("snapshot-dir", ".", "Directory holding the dated snapshot files")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// LoadTable reads the app constituents table.
func LoadTable() (*constituents.Table, error) {
	return constituents.LoadTable(*tableFile)
}

// SaveTable persists the app constituents table.
func SaveTable(t *constituents.Table) error {
	return constituents.SaveTable(*tableFile, t)
}
