// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command submodlock prints a lockfile pinning a repository and its git
// submodules to the commits currently checked out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	submodlocksubcommands "go.fuchsia.dev/submodlock/cmd/submodlock/subcommands"
	"go.fuchsia.dev/submodlock/cmdline"
)

func main() {
	os.Exit(int(run(os.Args[1:])))
}

func run(args []string) subcommands.ExitStatus {
	commander, err := submodlocksubcommands.NewCommander(args)
	if errors.Is(err, flag.ErrHelp) {
		return subcommands.ExitSuccess
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return subcommands.ExitUsageError
	}
	return cmdline.Main(cmdline.EnvFromOS(), commander)
}
