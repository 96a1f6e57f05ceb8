// Command lsort sorts lines of text with a merge sort over a linked
// list.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// globals are the settings of the top level command line, passed to
// each subcommand.
type globals struct {
	log      *logrus.Logger
	levelSet bool
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&sortCmd{in: os.Stdin, out: os.Stdout}, "")
	subcommands.Register(&demoCmd{out: os.Stdout}, "")

	level := flag.String("log-level", "info", "logging level: trace, debug, info, warn, or error")
	flag.Parse()

	g := &globals{log: logrus.StandardLogger()}
	flag.Visit(func(f *flag.Flag) { g.levelSet = g.levelSet || f.Name == "log-level" })
	if err := setLevel(g.log, *level); err != nil {
		g.log.WithError(err).Fatal("invalid log level")
	}

	os.Exit(int(subcommands.Execute(context.Background(), g)))
}

func setLevel(log *logrus.Logger, name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func globalsFrom(args []any) *globals {
	if len(args) > 0 {
		if g, ok := args[0].(*globals); ok {
			return g
		}
	}
	return &globals{log: logrus.StandardLogger()}
}
