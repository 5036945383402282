package draw

import (
	"strings"

	"github.com/pfrederiksen/tsw/internal/logger"
	"github.com/pfrederiksen/tsw/internal/names"
)

// Column is one column of a draw table: its header text and raw cell values.
type Column struct {
	Header string
	Cells  []string
}

// Table is a draw table as scraped, columns in page order.
type Table struct {
	Columns []Column
}

// RoundSlots are the cleaned player names of one round column.
type RoundSlots struct {
	Name  string
	Slots []string
}

// Warner receives recoverable diagnostics. *logger.Logger satisfies it.
type Warner interface {
	Warn(message string, fields logger.Fields)
}

// IsRoundHeader reports whether a column header names a bracket round.
func IsRoundHeader(header string) bool {
	return strings.Contains(header, "Round") || strings.Contains(header, "Finals")
}

// SlotsFromTable extracts the round columns of t, cleaning every cell with
// names.Clean. Columns are expected to share one length; a column that does
// not is reported to w and kept as is. w may be nil.
func SlotsFromTable(t Table, w Warner) []RoundSlots {
	rounds := make([]RoundSlots, 0, len(t.Columns))
	roundSize := 0

	for _, col := range t.Columns {
		if !IsRoundHeader(col.Header) {
			continue
		}

		if roundSize != 0 && roundSize != len(col.Cells) {
			if w != nil {
				w.Warn("Found draw with inconsistent columns", logger.Fields{
					"column":   col.Header,
					"length":   len(col.Cells),
					"expected": roundSize,
				})
			}
		} else {
			roundSize = len(col.Cells)
		}

		slots := make([]string, len(col.Cells))
		for i, cell := range col.Cells {
			slots[i] = names.Clean(cell)
		}
		rounds = append(rounds, RoundSlots{Name: col.Header, Slots: slots})
	}

	return rounds
}
