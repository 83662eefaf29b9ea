// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gitutil runs git commands against a working tree.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// GitError records a failed git invocation.
type GitError struct {
	Root        string
	Args        []string
	Output      string
	ErrorOutput string
	err         error
}

// ErrNotTopLevel marks a directory inside a work tree that is not the top
// level of that work tree, such as an uninitialized submodule.
var ErrNotTopLevel = errors.New("not the top level of a work tree")

// Error builds a GitError for a git invocation in root.
func Error(output, errorOutput string, err error, root string, args ...string) GitError {
	return GitError{
		Root:        root,
		Args:        args,
		Output:      output,
		ErrorOutput: errorOutput,
		err:         err,
	}
}

func (ge GitError) Error() string {
	result := fmt.Sprintf("(%s)", ge.Root)
	result += "'git "
	result += strings.Join(ge.Args, " ")
	result += "' failed:\n"
	result += "stdout:\n"
	result += ge.Output + "\n"
	result += "stderr:\n"
	result += ge.ErrorOutput
	result += "\ncommand fail error: " + ge.err.Error()
	return result
}

func (ge GitError) Unwrap() error {
	return ge.err
}

// Git runs git commands rooted at a single directory.
type Git struct {
	rootDir string
	gitPath string
	timeout time.Duration
	logger  hclog.Logger
}

type gitOpt interface {
	gitOpt()
}

type RootDirOpt string
type GitPathOpt string
type TimeoutOpt time.Duration

func (RootDirOpt) gitOpt() {}
func (GitPathOpt) gitOpt() {}
func (TimeoutOpt) gitOpt() {}

// New is the Git factory. Without a RootDirOpt commands run in the current
// working directory.
func New(logger hclog.Logger, opts ...gitOpt) *Git {
	g := &Git{
		gitPath: "git",
		logger:  logger,
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	for _, opt := range opts {
		switch typedOpt := opt.(type) {
		case RootDirOpt:
			g.rootDir = string(typedOpt)
		case GitPathOpt:
			g.gitPath = string(typedOpt)
		case TimeoutOpt:
			g.timeout = time.Duration(typedOpt)
		}
	}
	return g
}

// CurrentRevision returns the commit HEAD points to.
func (g *Git) CurrentRevision(ctx context.Context) (string, error) {
	return g.CurrentRevisionForRef(ctx, "HEAD")
}

// CheckoutRevision is CurrentRevision for a directory that must be the top
// level of its own work tree. git otherwise walks up to an enclosing
// repository and reports its HEAD instead.
func (g *Git) CheckoutRevision(ctx context.Context) (string, error) {
	args := []string{"rev-parse", "--show-prefix"}
	out, err := g.runOutput(ctx, args...)
	if err != nil {
		return "", err
	}
	if len(out) != 0 {
		return "", Error(strings.Join(out, "\n"), "", ErrNotTopLevel, g.rootDir, args...)
	}
	return g.CurrentRevision(ctx)
}

// CurrentRevisionForRef gets current rev for ref/branch/tags.
func (g *Git) CurrentRevisionForRef(ctx context.Context, ref string) (string, error) {
	out, err := g.runOutput(ctx, "rev-parse", ref)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("'git rev-parse %s' in %q printed nothing", ref, g.rootDir)
	}
	return out[0], nil
}

func (g *Git) runOutput(ctx context.Context, args ...string) ([]string, error) {
	var stdout, stderr bytes.Buffer
	if err := g.runGit(ctx, &stdout, &stderr, args...); err != nil {
		return nil, Error(stdout.String(), stderr.String(), err, g.rootDir, args...)
	}
	return trimOutput(stdout.String()), nil
}

func (g *Git) runGit(ctx context.Context, stdout, stderr *bytes.Buffer, args ...string) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	command := exec.CommandContext(ctx, g.gitPath, args...)
	command.Dir = g.rootDir
	command.Stdout = stdout
	command.Stderr = stderr
	g.logger.Debug("running git", "dir", g.rootDir, "args", strings.Join(args, " "))
	start := time.Now()
	err := command.Run()
	g.logger.Trace("git finished", "dir", g.rootDir, "elapsed", time.Since(start))
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return err
}

// trimOutput splits output into lines with surrounding whitespace removed,
// dropping a trailing empty line.
func trimOutput(o string) []string {
	output := strings.TrimSpace(o)
	if len(output) == 0 {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
