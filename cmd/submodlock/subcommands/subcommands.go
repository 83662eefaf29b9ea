// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subcommands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"go.fuchsia.dev/submodlock"
	"go.fuchsia.dev/submodlock/cmdline"
	"go.fuchsia.dev/submodlock/color"
)

type cmdBase struct {
	topLevelFlags submodlock.TopLevelFlags
}

func NewCommander(args []string) (*subcommands.Commander, error) {
	f := flag.NewFlagSet("submodlock", flag.ContinueOnError)

	var flags submodlock.TopLevelFlags
	flags.SetFlags(f)

	err := f.Parse(args)
	if err != nil {
		return nil, err
	}
	// Without a subcommand, behave like "generate".
	if f.NArg() == 0 {
		if err := f.Parse(append(append([]string{}, args...), "generate")); err != nil {
			return nil, err
		}
	}

	cdr := subcommands.NewCommander(f, "submodlock")

	// Mark all top-level flags as important so they should up in the default
	// help text.
	f.VisitAll(func(flg *flag.Flag) {
		cdr.ImportantFlag(flg.Name)
	})

	b := cmdBase{topLevelFlags: flags}

	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(&generateCmd{cmdBase: b}, "")
	cdr.Register(&versionCmd{cmdBase: b}, "")

	return cdr, nil
}

// executeWrapper converts a submodlock-style subcommand implementation into a
// subcommands.Command.Execute() function.
//
// Example:
//
//	func (c *fooCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
//		return executeWrapper(ctx, c.run, c.topLevelFlags, f.Args())
//	}
//	func (c *fooCmd) run(ctx context.Context, x *submodlock.X, args []string) error {
//		// ... actual implementation of the command
//	}
func executeWrapper(ctx context.Context, f func(ctx context.Context, x *submodlock.X, args []string) error, topLevelFlags submodlock.TopLevelFlags, args []string) subcommands.ExitStatus {
	err := func() error {
		x, err := submodlock.NewXFromContext(ctx, topLevelFlags)
		if err != nil {
			return err
		}
		return f(ctx, x, args)
	}()
	return errToExitStatus(ctx, topLevelFlags, err)
}

// errToExitStatus reports err on stderr and returns the exit status for it.
// ErrExitCode errors have already been reported and only set the status.
func errToExitStatus(ctx context.Context, topLevelFlags submodlock.TopLevelFlags, err error) subcommands.ExitStatus {
	env := cmdline.EnvFromContext(ctx)
	c := color.NewColor(color.EnableColor(topLevelFlags.Color), env.Stderr, env.Vars["TERM"])
	if !c.Enabled() {
		return cmdline.ExitCode(err, env.Stderr)
	}
	var exitCodeErr cmdline.ErrExitCode
	if err != nil && env.Stderr != nil && !errors.As(err, &exitCodeErr) {
		fmt.Fprintf(env.Stderr, "%s %s\n", c.Red("ERROR:"), err)
	}
	return cmdline.ExitCode(err, nil)
}
