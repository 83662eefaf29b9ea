// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Env represents the environment for command parsing and running.  Typically
// EnvFromOS is used to produce a default environment.  The environment may be
// explicitly set for finer control; e.g. in tests.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Vars   map[string]string // Environment variables
}

// EnvFromOS returns a new environment based on the operating system.
func EnvFromOS() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Vars:   SliceToMap(os.Environ()),
	}
}

// UsageErrorf prints the error message represented by the printf-style format
// and args, and returns ErrUsage.
func (e *Env) UsageErrorf(format string, args ...any) error {
	if e.Stderr != nil {
		fmt.Fprintf(e.Stderr, "ERROR: %s\n", fmt.Sprintf(format, args...))
	}
	return ErrUsage
}

// SliceToMap converts "key=value" pairs as returned by os.Environ into a map.
// Later duplicates win.
func SliceToMap(vars []string) map[string]string {
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, _ := strings.Cut(kv, "=")
		if k == "" {
			continue
		}
		m[k] = v
	}
	return m
}

type envKey struct{}

// AddEnvToContext returns a copy of ctx carrying env.
func AddEnvToContext(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFromContext returns the Env stored in ctx, or the OS environment if there
// is none.
func EnvFromContext(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey{}).(*Env); ok && env != nil {
		return env
	}
	return EnvFromOS()
}
