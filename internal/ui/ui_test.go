package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	err := PrintTable(&buf, [][]string{
		{"#", "GOAL"},
		{"1", "write docs"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "GOAL")
	assert.Contains(t, out, "write docs")
}

func TestColoursWithoutStyling(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	for _, dark := range []bool{false, true} {
		DarkTheme = dark

		assert.Equal(t, "ok", Green("ok"))
		assert.Equal(t, "7", Red(7))
		assert.Equal(t, "p", Magenta("p"))
		assert.Equal(t, "c", Cyan("c"))
		assert.Equal(t, "h", Highlight("h"))
	}

	DarkTheme = false
}
