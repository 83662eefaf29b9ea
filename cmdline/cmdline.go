// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdline ties a subcommands.Commander to the process environment.
package cmdline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/subcommands"
)

// Main runs commander with env attached to the context and returns its exit
// status.
func Main(env *Env, commander *subcommands.Commander) subcommands.ExitStatus {
	ctx := AddEnvToContext(context.Background(), env)
	return commander.Execute(ctx)
}

// ErrExitCode may be returned by a subcommand to cause the program to exit
// with a specific error code.
type ErrExitCode int

// Error implements the error interface method.
func (x ErrExitCode) Error() string {
	return fmt.Sprintf("exit code %d", x)
}

// ErrUsage indicates an error in command usage; e.g. unknown flags, subcommands
// or args.  It corresponds to exit code 2.
const ErrUsage = ErrExitCode(2)

// ExitCode returns the exit code corresponding to err.
//
//	0:    if err == nil
//	code: if err is or wraps ErrExitCode(code)
//	1:    all other errors
//
// Writes the error message for "all other errors" to w, if w is non-nil.
func ExitCode(err error, w io.Writer) subcommands.ExitStatus {
	if err == nil {
		return 0
	}
	var code ErrExitCode
	if errors.As(err, &code) {
		return subcommands.ExitStatus(code)
	}
	if w != nil {
		// We don't print "ERROR: exit code N" above to avoid cluttering the output.
		fmt.Fprintf(w, "ERROR: %v\n", err)
	}
	return 1
}
