// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xtest provides utilities for testing submodlock functionality.
package xtest

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"go.fuchsia.dev/submodlock"
	"go.fuchsia.dev/submodlock/cmdline"
	"go.fuchsia.dev/submodlock/gitutil"
)

// NewX is similar to submodlock.NewX, but is meant for usage in a testing
// environment. Output goes to the returned buffers instead of the process
// stdout/stderr.
func NewX(t *testing.T) (x *submodlock.X, stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	env := &cmdline.Env{
		Stdout: stdout,
		Stderr: stderr,
		Vars:   map[string]string{},
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Info,
		Output: stderr,
	})
	x = &submodlock.X{
		Env:    env,
		Cwd:    t.TempDir(),
		Usage:  env.UsageErrorf,
		Logger: logger,
	}
	return x, stdout, stderr
}

// RequireGit skips the test if git is not installed.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

var gitConfig = map[string]string{
	"init.defaultbranch":  "main",
	"user.name":           "Submodlock Tester",
	"user.email":          "tester@example.com",
	"commit.gpgsign":      "false",
	// Allow adding local git directories as submodules.
	"protocol.file.allow": "always",
}

// RunGit runs git in dir with a hermetic config and returns its stdout.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "HOME="+dir)
	for k, v := range gitutil.GitConfigEnvVars(gitConfig) {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = stdout.String()
		}
		t.Fatalf("%q failed: %s\n%s", "git "+strings.Join(args, " "), err, msg)
	}
	return stdout.String()
}

// SetupGitRepo initializes a repository in dir, commits files and returns
// the resulting HEAD.
func SetupGitRepo(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	RunGit(t, dir, "init")
	for path, contents := range files {
		WriteFile(t, filepath.Join(dir, path), contents)
	}
	RunGit(t, dir, "add", "-A")
	RunGit(t, dir, "commit", "--allow-empty", "-m", "Initial commit")
	return strings.TrimSpace(RunGit(t, dir, "rev-parse", "HEAD"))
}

func WriteFile(t *testing.T, path string, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
}
