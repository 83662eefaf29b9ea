// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"fmt"
	"io"

	"go.fuchsia.dev/submodlock/isatty"
)

const (
	escape = "\033["
	clear  = escape + "0m"
)

type ColorCode int

// Foreground text colors
const (
	RedFg ColorCode = 31
)

type Color interface {
	Red(format string, a ...any) string
	Enabled() bool
}

type color struct{}

func (color) Red(format string, a ...any) string { return colorString(RedFg, format, a...) }
func (color) Enabled() bool {
	return true
}

func colorString(c ColorCode, format string, a ...any) string {
	return fmt.Sprintf("%v%vm%v%v", escape, c, fmt.Sprintf(format, a...), clear)
}

type monochrome struct{}

func (monochrome) Red(format string, a ...any) string { return fmt.Sprintf(format, a...) }
func (monochrome) Enabled() bool {
	return false
}

type EnableColor string

const (
	ColorAlways EnableColor = "always"
	ColorNever  EnableColor = "never"
	ColorAuto   EnableColor = "auto"
)

// Valid reports whether e is one of the accepted -color values.
func (e EnableColor) Valid() bool {
	return e == ColorAlways || e == ColorNever || e == ColorAuto
}

// NewColor returns a colorizer for output written to w. In auto mode color is
// used only when w is a terminal and term is not "dumb" or empty.
func NewColor(enableColor EnableColor, w io.Writer, term string) Color {
	ec := enableColor != ColorNever
	if enableColor != ColorAlways {
		if ec {
			switch term {
			case "dumb", "":
				ec = false
			}
		}
		if ec {
			ec = isatty.IsTerminal(w)
		}
	}
	if ec {
		return color{}
	} else {
		return monochrome{}
	}
}
