// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns. To be used as a optional companion of the
// assert/check library.
package testt

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Context creates a context and attaches its cancellation function to
// the test execution's Cleanup. Given the execution of tests, this
// means that the context is canceled *after* the test functions
// defers have run.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// Logger returns a logrus logger that discards its output, and the
// hook that records every entry. If the test fails, the recorded
// entries are written to the test log during cleanup.
func Logger(t testing.TB) (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	t.Cleanup(func() {
		for _, entry := range hook.AllEntries() {
			Logf(t, "%s: %s %v", entry.Level, entry.Message, entry.Data)
		}
	})
	return logger, hook
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Log with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}
