// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrationtests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	submodlocksubcommands "go.fuchsia.dev/submodlock/cmd/submodlock/subcommands"
	"go.fuchsia.dev/submodlock/cmdline"
	"go.fuchsia.dev/submodlock/submodlocktest/xtest"
)

// submodlock runs the tool in-process with the given arguments and returns
// its stdout, stderr and exit status.
func submodlock(t *testing.T, args ...string) (string, string, subcommands.ExitStatus) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{
		Stdout: &stdout,
		Stderr: &stderr,
		Vars:   cmdline.SliceToMap(os.Environ()),
	}
	commander, err := submodlocksubcommands.NewCommander(append([]string{"-color=never"}, args...))
	if err != nil {
		t.Fatal(err)
	}
	retcode := cmdline.Main(env, commander)
	return stdout.String(), stderr.String(), retcode
}

// setupSuperproject creates a repository with one git submodule per name,
// checked out under vendor/<name>. It returns the superproject dir and the
// commit of every repository keyed by its path, with the superproject under ".".
func setupSuperproject(t *testing.T, names ...string) (string, map[string]string) {
	t.Helper()
	xtest.RequireGit(t)

	root := t.TempDir()
	xtest.SetupGitRepo(t, root, map[string]string{"README.md": "root"})
	for _, name := range names {
		remote := t.TempDir()
		xtest.SetupGitRepo(t, remote, map[string]string{name + ".txt": name})
		xtest.RunGit(t, root, "submodule", "add", remote, filepath.Join("vendor", name))
	}
	xtest.RunGit(t, root, "commit", "--allow-empty", "-m", "Add submodules")

	revs := map[string]string{".": revParse(t, root)}
	for _, name := range names {
		path := "vendor/" + name
		revs[path] = revParse(t, filepath.Join(root, path))
	}
	return root, revs
}

func revParse(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(xtest.RunGit(t, dir, "rev-parse", "HEAD"))
}
