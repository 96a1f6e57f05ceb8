// Package metrics provides observers for dt.MergeSort: a Counter
// that tallies the work of each sort, and a Logger that reports it
// through logrus.
package metrics

import (
	"github.com/sirupsen/logrus"

	"github.com/tychoish/dlist/dt"
)

var (
	_ dt.Metrics[int] = (*Counter[int])(nil)
	_ dt.Metrics[int] = (*Logger[int])(nil)
)

// Counter tallies comparisons and swaps. Reset zeroes both at the
// start of every sort, while Completed accumulates across sorts. The
// zero value is ready to use.
type Counter[T any] struct {
	Comparisons int
	Swaps       int
	Completed   int
}

func (c *Counter[T]) Compare(T, T) { c.Comparisons++ }
func (c *Counter[T]) Swap()        { c.Swaps++ }
func (c *Counter[T]) Done()        { c.Completed++ }
func (c *Counter[T]) Reset()       { c.Comparisons, c.Swaps = 0, 0 }

// Logger counts like Counter, and logs every comparison at trace
// level and a summary of each sort at info level.
type Logger[T any] struct {
	Counter[T]
	log logrus.Ext1FieldLogger
}

// NewLogger constructs a Logger writing to log. When log is nil, the
// standard logrus logger is used.
func NewLogger[T any](log logrus.Ext1FieldLogger) *Logger[T] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Logger[T]{log: log}
}

func (l *Logger[T]) Compare(a, b T) {
	l.Counter.Compare(a, b)
	l.log.WithFields(logrus.Fields{"a": a, "b": b}).Trace("compare")
}

func (l *Logger[T]) Done() {
	l.Counter.Done()
	l.log.WithFields(logrus.Fields{
		"comparisons": l.Comparisons,
		"swaps":       l.Swaps,
		"sorts":       l.Completed,
	}).Info("sort complete")
}
