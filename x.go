// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package submodlock provides the execution environment shared by the
// submodlock subcommands.
package submodlock

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"go.fuchsia.dev/submodlock/cmdline"
	"go.fuchsia.dev/submodlock/color"
)

// X holds the execution environment for the submodlock tool: where output
// goes, how it is logged, and the directory it was started in.
type X struct {
	Env    *cmdline.Env
	Cwd    string
	Usage  func(format string, args ...any) error
	Logger hclog.Logger
}

// TopLevelFlags holds the flags shared by every subcommand.
type TopLevelFlags struct {
	Color        string
	QuietVerbose bool
	DebugVerbose bool
	TraceVerbose bool
}

// SetFlags registers the top-level flags on f.
func (t *TopLevelFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.Color, "color", "auto", "Use color to format output. Values can be always, never and auto")
	f.BoolVar(&t.QuietVerbose, "quiet", false, "Only print user actionable messages")
	f.BoolVar(&t.QuietVerbose, "q", false, "Same as -quiet")
	f.BoolVar(&t.DebugVerbose, "v", false, "Print debug level output")
	f.BoolVar(&t.TraceVerbose, "vv", false, "Print trace level output")
}

// LogLevel maps the verbosity flags to a logger level.
func (t TopLevelFlags) LogLevel() hclog.Level {
	switch {
	case t.QuietVerbose:
		return hclog.Warn
	case t.TraceVerbose:
		return hclog.Trace
	case t.DebugVerbose:
		return hclog.Debug
	}
	return hclog.Info
}

// NewXFromContext is NewX for the cmdline env attached to ctx.
func NewXFromContext(ctx context.Context, topLevelFlags TopLevelFlags) (*X, error) {
	return NewX(cmdline.EnvFromContext(ctx), topLevelFlags)
}

// NewX returns a new execution environment, given a cmdline env.
func NewX(env *cmdline.Env, flags TopLevelFlags) (*X, error) {
	if !color.EnableColor(flags.Color).Valid() {
		return nil, env.UsageErrorf("invalid value of -color flag")
	}
	stderr := env.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "submodlock",
		Level:  flags.LogLevel(),
		Output: stderr,
	})
	return &X{
		Env:    env,
		Cwd:    cwd,
		Usage:  env.UsageErrorf,
		Logger: logger,
	}, nil
}

// Stdout returns where lockfile content is written.
func (x *X) Stdout() io.Writer {
	if x.Env == nil || x.Env.Stdout == nil {
		return io.Discard
	}
	return x.Env.Stdout
}

// Stderr returns where diagnostics are written.
func (x *X) Stderr() io.Writer {
	if x.Env == nil || x.Env.Stderr == nil {
		return io.Discard
	}
	return x.Env.Stderr
}

// UsageErrorf prints the error message represented by the printf-style format
// and args, followed by the usage output.  The implementation typically calls
// cmdline.Env.UsageErrorf.
func (x *X) UsageErrorf(format string, args ...any) error {
	if x.Usage != nil {
		return x.Usage(format, args...)
	}
	return fmt.Errorf(format, args...)
}
