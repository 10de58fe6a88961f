package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table on w. The first row is the
// header.
func PrintTable(w io.Writer, data [][]string) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering session table: %w", err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
