// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subcommands

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"go.fuchsia.dev/submodlock"
	"go.fuchsia.dev/submodlock/version"
)

type versionCmd struct {
	cmdBase
}

func (c *versionCmd) Name() string     { return "version" }
func (c *versionCmd) Synopsis() string { return "Print the submodlock version" }
func (c *versionCmd) Usage() string {
	return `Print the Git commit revision submodlock was built from and the build date.

Usage:
  submodlock version
`
}

func (c *versionCmd) SetFlags(f *flag.FlagSet) {}

func (c *versionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return executeWrapper(ctx, c.run, c.topLevelFlags, f.Args())
}

func (c *versionCmd) run(_ context.Context, x *submodlock.X, _ []string) error {
	var versionString bytes.Buffer
	fmt.Fprintf(&versionString, "submodlock")

	v := version.FormattedVersion()
	if v != "" {
		fmt.Fprintf(&versionString, " %s", v)
	}

	fmt.Fprintf(x.Stdout(), "%s\n", versionString.String())

	return nil
}
