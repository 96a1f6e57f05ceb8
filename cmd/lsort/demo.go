package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/tychoish/dlist/dt"
	"github.com/tychoish/dlist/metrics"
)

// demoCmd implements subcommands.Command for the "demo" command.
type demoCmd struct {
	out io.Writer
}

// Name implements subcommands.Command.Name.
func (*demoCmd) Name() string { return "demo" }

// Synopsis implements subcommands.Command.Synopsis.
func (*demoCmd) Synopsis() string { return "sort a small example list" }

// Usage implements subcommands.Command.Usage.
func (*demoCmd) Usage() string { return "demo:\n  Prints an example list before and after sorting it.\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*demoCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (c *demoCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	demo(c.out, globalsFrom(args).log)
	return subcommands.ExitSuccess
}

func demo(out io.Writer, log logrus.Ext1FieldLogger) {
	list := dt.NewList(3, 2, 4, 1, 0)
	fmt.Fprintln(out, "List", list)

	dt.NewNativeMergeSort(dt.WithMetrics[int](metrics.NewLogger[int](log))).Sort(list)
	fmt.Fprintln(out, "Sorted", list)
}
