// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lockfile

import "fmt"

// ParseError reports that the declaration file could not be read.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reading submodule declarations from %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResolutionError reports that the commit checked out at Path could not be
// determined.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving revision of %q: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
