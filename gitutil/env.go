// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gitutil

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GitConfigEnvVars converts git config key/value pairs into the
// GIT_CONFIG_COUNT/GIT_CONFIG_KEY_n/GIT_CONFIG_VALUE_n environment variables
// understood by git, so config can be injected without touching any
// gitconfig file. Keys are numbered in sorted order.
func GitConfigEnvVars(config map[string]string) map[string]string {
	keys := maps.Keys(config)
	slices.Sort(keys)
	env := map[string]string{
		"GIT_CONFIG_COUNT": strconv.Itoa(len(keys)),
	}
	for i, k := range keys {
		env[fmt.Sprintf("GIT_CONFIG_KEY_%d", i)] = k
		env[fmt.Sprintf("GIT_CONFIG_VALUE_%d", i)] = config[k]
	}
	return env
}
