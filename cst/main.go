package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/constituents/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints the candidates and exits.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{Flags: map[string]complete.Predictor{
			"d": predict.Nothing,
			"f": predict.Files("*.csv"),
		}}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"table-file":   predict.Files("*.csv"),
			"snapshot-dir": predict.Dirs("*"),
			"v":            predict.Nothing,
		},
	}
	completer.Complete("cst")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall back to external cst-<name> binaries, so the
	// CLI can be extended without rebuilding it.
	if name := flag.Arg(0); name != "" && !known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// known reports whether name is a built-in subcommand.
func known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, n := range cmd.Names() {
		if n == name {
			return true
		}
	}
	return false
}
