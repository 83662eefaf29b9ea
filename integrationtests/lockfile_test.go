// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrationtests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"go.fuchsia.dev/submodlock/lockfile"
	"gopkg.in/yaml.v3"
)

func TestGenerateWithSubmodules(t *testing.T) {
	t.Parallel()

	root, revs := setupSuperproject(t, "foo", "bar")

	stdout, stderr, status := submodlock(t, "generate", "-root-id", "github.com/example/root", root)
	if status != subcommands.ExitSuccess {
		t.Fatalf("generate exited with %d:\n%s", status, stderr)
	}
	want := fmt.Sprintf("github.com/example/root %s\nfoo %s\nbar %s\n",
		revs["."], revs["vendor/foo"], revs["vendor/bar"])
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("generate output diff (-want +got):\n%s", diff)
	}
}

func TestGenerateParallel(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b", "c", "d", "e"}
	root, revs := setupSuperproject(t, names...)

	stdout, stderr, status := submodlock(t, "generate", "-j", "3", "-timeout", "1m", root)
	if status != subcommands.ExitSuccess {
		t.Fatalf("generate exited with %d:\n%s", status, stderr)
	}
	lines := []string{"github.com/localhots/satan " + revs["."]}
	for _, name := range names {
		lines = append(lines, name+" "+revs["vendor/"+name])
	}
	if diff := cmp.Diff(strings.Join(lines, "\n")+"\n", stdout); diff != "" {
		t.Errorf("generate output diff (-want +got):\n%s", diff)
	}
}

func TestGenerateYAML(t *testing.T) {
	t.Parallel()

	root, revs := setupSuperproject(t, "foo")

	stdout, stderr, status := submodlock(t, "generate", "-format", "yaml", root)
	if status != subcommands.ExitSuccess {
		t.Fatalf("generate exited with %d:\n%s", status, stderr)
	}
	var got lockfile.File
	if err := yaml.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("generate printed invalid YAML: %v\n%s", err, stdout)
	}
	want := lockfile.File{Repos: []lockfile.Entry{
		{Repo: "github.com/localhots/satan", Revision: revs["."]},
		{Repo: "foo", Revision: revs["vendor/foo"]},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML lockfile diff (-want +got):\n%s", diff)
	}
}

func TestGenerateWithoutSubmodules(t *testing.T) {
	t.Parallel()

	root, revs := setupSuperproject(t)
	if err := os.WriteFile(filepath.Join(root, ".gitmodules"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, status := submodlock(t, "generate", root)
	if status != subcommands.ExitSuccess {
		t.Fatalf("generate exited with %d:\n%s", status, stderr)
	}
	if diff := cmp.Diff("github.com/localhots/satan "+revs["."]+"\n", stdout); diff != "" {
		t.Errorf("generate output diff (-want +got):\n%s", diff)
	}
}

func TestGenerateMissingGitmodules(t *testing.T) {
	t.Parallel()

	root, _ := setupSuperproject(t)

	stdout, stderr, status := submodlock(t, "generate", root)
	if status != subcommands.ExitFailure {
		t.Errorf("generate exited with %d, want %d", status, subcommands.ExitFailure)
	}
	if stdout != "" {
		t.Errorf("generate printed %q, want no output", stdout)
	}
	if !strings.Contains(stderr, "ERROR: ") || !strings.Contains(stderr, ".gitmodules") {
		t.Errorf("stderr %q does not report the missing .gitmodules", stderr)
	}
}

func TestGenerateMissingCheckout(t *testing.T) {
	t.Parallel()

	root, revs := setupSuperproject(t, "foo", "bar", "baz")
	if err := os.RemoveAll(filepath.Join(root, "vendor", "bar")); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, status := submodlock(t, "generate", root)
	if status != subcommands.ExitFailure {
		t.Errorf("generate exited with %d, want %d", status, subcommands.ExitFailure)
	}
	want := fmt.Sprintf("github.com/localhots/satan %s\nfoo %s\n", revs["."], revs["vendor/foo"])
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("generate output diff (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "vendor/bar") {
		t.Errorf("stderr %q does not name the failing path", stderr)
	}
}

func TestGenerateUninitializedSubmodule(t *testing.T) {
	t.Parallel()

	root, revs := setupSuperproject(t, "foo", "bar")
	// An uninitialized submodule is an empty directory inside the root
	// checkout.
	foo := filepath.Join(root, "vendor", "foo")
	if err := os.RemoveAll(foo); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(foo, 0o755); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, status := submodlock(t, "generate", root)
	if status != subcommands.ExitFailure {
		t.Errorf("generate exited with %d, want %d", status, subcommands.ExitFailure)
	}
	want := fmt.Sprintf("github.com/localhots/satan %s\n", revs["."])
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("generate output diff (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "vendor/foo") {
		t.Errorf("stderr %q does not name the failing path", stderr)
	}
}

// Not parallel: changes the working directory of the test process.
func TestNoSubcommand(t *testing.T) {
	root, revs := setupSuperproject(t, "foo")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	stdout, stderr, status := submodlock(t)
	if status != subcommands.ExitSuccess {
		t.Fatalf("submodlock exited with %d:\n%s", status, stderr)
	}
	want := fmt.Sprintf("github.com/localhots/satan %s\nfoo %s\n", revs["."], revs["vendor/foo"])
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("submodlock output diff (-want +got):\n%s", diff)
	}
}
