package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hamzaov/keysweep/internal/runner"
)

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != 0 {
		t.Fatalf("nil error: want 0, got %d", got)
	}
	wrapped := fmt.Errorf("resolving: %w", runner.ErrNoKeys)
	if got := exitCode(wrapped); got != 1 {
		t.Fatalf("no-keys error: want 1, got %d", got)
	}
	if got := exitCode(runner.ErrInvalidInput); got != 2 {
		t.Fatalf("invalid input: want 2, got %d", got)
	}
	if got := exitCode(errors.New("boom")); got != 2 {
		t.Fatalf("other error: want 2, got %d", got)
	}
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(nil)

	if err := root.Execute(); err != nil {
		t.Fatalf("help must not be an error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "--csv") {
		t.Fatalf("help output incomplete:\n%s", out)
	}
}

func TestRoot_TooManyArgs(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"one", "two"})

	if err := root.Execute(); err == nil {
		t.Fatalf("want an error for more than one positional argument")
	}
}
