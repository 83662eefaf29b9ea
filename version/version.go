// Copyright 2016 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

import (
	"bytes"
	"fmt"
)

// Set at link time, e.g.
// -ldflags "-X go.fuchsia.dev/submodlock/version.GitCommit=$(git rev-parse HEAD)".
var (
	GitCommit string
	BuildTime string
)

// FormattedVersion returns the commit and build time stamped into the
// binary, or an empty string for an unstamped build.
func FormattedVersion() string {
	var versionString bytes.Buffer
	if GitCommit != "" {
		fmt.Fprintf(&versionString, "%s", GitCommit)
	}
	if BuildTime != "" {
		fmt.Fprintf(&versionString, " %s", BuildTime)
	}
	return versionString.String()
}
