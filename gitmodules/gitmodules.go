// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gitmodules extracts submodule paths from a .gitmodules file.
package gitmodules

import (
	"io"
	"os"
	"regexp"
	"strings"
)

// DefaultFile is the conventional name of the submodule declaration file.
const DefaultFile = ".gitmodules"

var pathRegex = regexp.MustCompile(`path = (.*)`)

// Entry is a submodule path declared in a .gitmodules file.
type Entry struct {
	Path string
	// Line is the 1-based line the declaration was read from.
	Line int
}

// Parse scans r for "path = <value>" declarations and returns them in the
// order they appear. Everything else is ignored, so a file without any
// declarations yields an empty slice and no error. Lines may be of any
// length.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	entries := []Entry{}
	for i, text := range strings.Split(string(data), "\n") {
		m := pathRegex.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		entries = append(entries, Entry{
			Path: strings.TrimSuffix(m[1], "\r"),
			Line: i + 1,
		})
	}
	return entries, nil
}

// ParseFile opens filename and parses it with Parse.
func ParseFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Paths returns the declared paths of entries.
func Paths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}
