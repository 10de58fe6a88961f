// Package ui holds the colour palette and table rendering shared by the
// terminal output of werk commands.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour so that output stays
// readable on dark terminal backgrounds.
var DarkTheme bool

func pick(light, dark pterm.Color, a any) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return pick(pterm.FgGreen, pterm.FgLightGreen, a)
}

func Cyan(a any) string {
	return pick(pterm.FgCyan, pterm.FgLightCyan, a)
}

func Magenta(a any) string {
	return pick(pterm.FgMagenta, pterm.FgLightMagenta, a)
}

func Red(a any) string {
	return pick(pterm.FgRed, pterm.FgLightRed, a)
}

// Highlight makes a value stand out against the surrounding text.
func Highlight(a any) string {
	return pick(pterm.FgBlack, pterm.FgLightWhite, a)
}
