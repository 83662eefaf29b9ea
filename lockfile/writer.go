// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lockfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how entries are rendered.
type Format string

const (
	// FormatText prints "<repo> <commit>" per line.
	FormatText Format = "text"
	// FormatYAML prints a single YAML document listing every entry.
	FormatYAML Format = "yaml"
)

var formats = []Format{FormatText, FormatYAML}

// ParseFormat validates a -format flag value.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, want one of %v", s, formats)
}

// Writer receives lock entries in order.
type Writer interface {
	Add(e Entry) error
	// Flush is called once, after every entry has been added successfully.
	Flush() error
}

// NewWriter returns a Writer rendering format to w.
func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return &textWriter{w: w}, nil
	case FormatYAML:
		return &yamlWriter{w: w}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Add(e Entry) error {
	_, err := fmt.Fprintf(t.w, "%s %s\n", e.Repo, e.Revision)
	return err
}

func (t *textWriter) Flush() error { return nil }

// File is the YAML rendering of a lockfile.
type File struct {
	Repos []Entry `yaml:"repos"`
}

type yamlWriter struct {
	w    io.Writer
	file File
}

func (y *yamlWriter) Add(e Entry) error {
	y.file.Repos = append(y.file.Repos, e)
	return nil
}

func (y *yamlWriter) Flush() error {
	if y.file.Repos == nil {
		y.file.Repos = []Entry{}
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(&y.file); err != nil {
		return fmt.Errorf("encoding lockfile: %w", err)
	}
	return enc.Close()
}
