// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subcommands

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/subcommands"
	"go.fuchsia.dev/submodlock"
	"go.fuchsia.dev/submodlock/cmdline"
)

func TestErrToExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		color      string
		err        error
		want       subcommands.ExitStatus
		wantStderr string
	}{
		{
			name: "no error",
			want: 0,
		},
		{
			name:       "generic error",
			err:        fmt.Errorf("foo"),
			want:       1,
			wantStderr: "ERROR: foo\n",
		},
		{
			name:       "colored error",
			color:      "always",
			err:        fmt.Errorf("foo"),
			want:       1,
			wantStderr: "\x1b[31mERROR:\x1b[0m foo\n",
		},
		{
			name:  "colored usage error",
			color: "always",
			err:   cmdline.ErrUsage,
			want:  2,
		},
		{
			name: "exit status error",
			err:  cmdline.ErrExitCode(42),
			want: 42,
		},
		{
			name: "wrapped usage error",
			err:  fmt.Errorf("parsing: %w", cmdline.ErrUsage),
			want: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer
			ctx := cmdline.AddEnvToContext(context.Background(), &cmdline.Env{Stderr: &stderr})
			flags := submodlock.TopLevelFlags{Color: "never"}
			if tc.color != "" {
				flags.Color = tc.color
			}
			got := errToExitStatus(ctx, flags, tc.err)
			if got != tc.want {
				t.Errorf("Wrong exit code %d, wanted %d", got, tc.want)
			}
			if stderr.String() != tc.wantStderr {
				t.Errorf("errToExitStatus() wrote %q, want %q", stderr.String(), tc.wantStderr)
			}
		})
	}
}

func TestNewCommanderRegistersCommands(t *testing.T) {
	t.Parallel()

	cdr, err := NewCommander([]string{"-q"})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		got = append(got, c.Name())
	})
	for _, want := range []string{"generate", "version"} {
		found := false
		for _, name := range got {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("commander is missing %q, has %v", want, got)
		}
	}
}
