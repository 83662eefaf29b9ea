// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lockfile

// Entry pins a repository to a commit.
type Entry struct {
	Repo     string `yaml:"repo"`
	Revision string `yaml:"commit"`
}

// RepoIdentifier derives the identifier of a submodule from its declared
// path by dropping the first prefixLen bytes, e.g. "vendor/foo" with a prefix
// length of 7 becomes "foo". Paths are not checked against the prefix; a
// path no longer than prefixLen yields "".
func RepoIdentifier(path string, prefixLen int) string {
	if prefixLen <= 0 {
		return path
	}
	if len(path) <= prefixLen {
		return ""
	}
	return path[prefixLen:]
}
