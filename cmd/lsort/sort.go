package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/tychoish/dlist/dt"
	"github.com/tychoish/dlist/dt/cmp"
	"github.com/tychoish/dlist/ers"
	"github.com/tychoish/dlist/metrics"
)

// sortCmd implements subcommands.Command for the "sort" command.
type sortCmd struct {
	in  io.Reader
	out io.Writer

	flags  config
	config string
}

// Name implements subcommands.Command.Name.
func (*sortCmd) Name() string { return "sort" }

// Synopsis implements subcommands.Command.Synopsis.
func (*sortCmd) Synopsis() string { return "sort lines read from standard input" }

// Usage implements subcommands.Command.Usage.
func (*sortCmd) Usage() string {
	return `sort [-reverse] [-numeric] [-metrics] [-json] [-config <file>]:
  Reads lines from standard input and writes them, sorted, to
  standard output.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.flags.Reverse, "reverse", false, "sort from high to low")
	f.BoolVar(&c.flags.Numeric, "numeric", false, "compare lines as numbers")
	f.BoolVar(&c.flags.Metrics, "metrics", false, "log the number of comparisons and swaps")
	f.BoolVar(&c.flags.JSON, "json", false, "write the sorted lines as a JSON array")
	f.StringVar(&c.config, "config", "", "path to a TOML or YAML config file")
}

// Execute implements subcommands.Command.Execute.
func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	g := globalsFrom(args)

	conf, err := c.resolve(f)
	if err != nil {
		g.log.WithError(err).Error("sort failed")
		return subcommands.ExitFailure
	}
	if conf.LogLevel != "" && !g.levelSet {
		if err := setLevel(g.log, conf.LogLevel); err != nil {
			g.log.WithError(err).Error("invalid log level in config")
			return subcommands.ExitFailure
		}
	}

	if err := sortLines(c.in, c.out, conf, g.log); err != nil {
		g.log.WithError(err).Error("sort failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolve merges the config file, if any, with the flags set on the
// command line.
func (c *sortCmd) resolve(f *flag.FlagSet) (config, error) {
	if c.config == "" {
		return c.flags, nil
	}

	conf, err := loadConfig(c.config)
	if err != nil {
		return config{}, err
	}

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "reverse":
			conf.Reverse = c.flags.Reverse
		case "numeric":
			conf.Numeric = c.flags.Numeric
		case "metrics":
			conf.Metrics = c.flags.Metrics
		case "json":
			conf.JSON = c.flags.JSON
		}
	})
	return *conf, nil
}

type line struct {
	text string
	num  float64
}

func readLines(in io.Reader, numeric bool) (*dt.List[line], error) {
	out := &dt.List[line]{}

	scanner := bufio.NewScanner(in)
	for idx := 1; scanner.Scan(); idx++ {
		ln := line{text: scanner.Text()}
		if numeric {
			num, err := strconv.ParseFloat(ln.text, 64)
			if err != nil {
				return nil, ers.Wrapf(ers.ErrInvalidInput, "line %d: %q is not a number", idx, ln.text)
			}
			ln.num = num
		}
		out.PushBack(ln)
	}

	return out, ers.Wrap(scanner.Err(), "reading input")
}

func sortLines(in io.Reader, out io.Writer, conf config, log logrus.Ext1FieldLogger) error {
	lines, err := readLines(in, conf.Numeric)
	if err != nil {
		return err
	}

	lt := cmp.LessThanConverter(func(l line) string { return l.text })
	if conf.Numeric {
		lt = cmp.LessThanConverter(func(l line) float64 { return l.num })
	}
	if conf.Reverse {
		lt = cmp.Reverse(lt)
	}

	var opts []dt.SortOption[line]
	if conf.Metrics {
		opts = append(opts, dt.WithMetrics[line](metrics.NewLogger[line](log)))
	}

	dt.NewMergeSort(lt, opts...).Sort(lines)
	log.WithField("lines", lines.Len()).Debug("sorted input")

	if conf.JSON {
		return writeJSON(out, lines)
	}

	w := bufio.NewWriter(out)
	for ln := range lines.Seq() {
		if _, err := fmt.Fprintln(w, ln.text); err != nil {
			return ers.Wrap(err, "writing output")
		}
	}
	return ers.Wrap(w.Flush(), "writing output")
}

func writeJSON(out io.Writer, lines *dt.List[line]) error {
	texts := &dt.List[string]{}
	for ln := range lines.Seq() {
		texts.PushBack(ln.text)
	}

	if err := json.NewEncoder(out).Encode(texts); err != nil {
		return ers.Wrap(err, "writing output")
	}
	return nil
}
