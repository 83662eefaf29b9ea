// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subcommands

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"
	"go.fuchsia.dev/submodlock"
	"go.fuchsia.dev/submodlock/lockfile"
)

type generateCmd struct {
	cmdBase

	gitmodules string
	rootID     string
	prefixLen  int
	format     string
	jobs       int
	timeout    time.Duration
}

func (c *generateCmd) Name() string { return "generate" }
func (c *generateCmd) Synopsis() string {
	return "Print a lockfile pinning the root repository and its submodules"
}
func (c *generateCmd) Usage() string {
	return `
The "submodlock generate" command reads the submodule declarations in
.gitmodules and prints one line per repository: the root repository first,
then every declared submodule in declaration order. Each line holds the
repository identifier and the commit currently checked out, separated by a
single space:

  github.com/localhots/satan 5b7e1d0c...
  foo 91d92f57...

A submodule's identifier is its declared path with the first -prefix-len
bytes removed ("vendor/foo" becomes "foo"). Commits are resolved with
"git rev-parse HEAD" inside each checkout. The first path that cannot be
resolved aborts the run; nothing is printed for it or any later path.

Running submodlock without a subcommand is the same as running generate.

Usage:
  submodlock generate [flags] [<root dir>]

<root dir> is the root repository checkout, "." if omitted. Declared paths are
resolved relative to it.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gitmodules, "gitmodules", "", "Submodule declaration file. Defaults to .gitmodules in the root dir.")
	f.StringVar(&c.rootID, "root-id", lockfile.DefaultRootIdentifier, "Identifier printed for the root repository.")
	f.IntVar(&c.prefixLen, "prefix-len", lockfile.DefaultPrefixLen, "Number of leading bytes removed from a submodule path to form its identifier.")
	f.StringVar(&c.format, "format", string(lockfile.FormatText), "Output format: text or yaml.")
	f.IntVar(&c.jobs, "j", 1, "Number of git invocations to run simultaneously. Output order does not depend on it.")
	f.DurationVar(&c.timeout, "timeout", 0, "Abort a git invocation that takes longer than this (eg 30s). 0 waits forever.")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return executeWrapper(ctx, c.run, c.topLevelFlags, f.Args())
}

func (c *generateCmd) run(ctx context.Context, x *submodlock.X, args []string) error {
	if len(args) > 1 {
		return x.UsageErrorf("unexpected number of arguments")
	}
	format, err := lockfile.ParseFormat(c.format)
	if err != nil {
		return x.UsageErrorf("%v", err)
	}
	if c.jobs < 1 {
		return x.UsageErrorf("-j should be at least 1")
	}
	if c.prefixLen < 0 {
		return x.UsageErrorf("-prefix-len should not be negative")
	}
	if c.timeout < 0 {
		return x.UsageErrorf("-timeout should not be negative")
	}

	config := lockfile.DefaultConfig()
	config.RootIdentifier = c.rootID
	config.PrefixLen = c.prefixLen
	config.Declarations = c.gitmodules
	config.Jobs = c.jobs
	config.Timeout = c.timeout
	if len(args) == 1 {
		config.RootDir = args[0]
	}

	w, err := lockfile.NewWriter(format, x.Stdout())
	if err != nil {
		return err
	}
	return lockfile.NewGenerator(x.Logger, config, nil).Run(ctx, w)
}
