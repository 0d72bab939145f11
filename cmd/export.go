package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/constituents"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the constituents table" }
func (*exportCmd) Usage() string {
	return `cst export [-format json|csv] [-o <file>]

  Writes the constituents table to stdout or a file, either as its wide
  CSV form or as a JSON array of ticker records.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or csv.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := LoadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	switch c.format {
	case "json":
		err = constituents.ExportJSON(w, t)
	case "csv":
		err = constituents.EncodeTable(w, t)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting table: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
