// Package display provides the 16x2 character LCD presentation with hardware
// abstraction. The real implementation drives an HD44780 in 4-bit GPIO mode.
// The fake implementation records writes for testing without hardware.
package display

// Rows and Cols describe the fixed character matrix.
const (
	Rows = 2
	Cols = 16
)

// The trend indicator glyph lives in the rightmost column of the top row.
const (
	GlyphRow = 0
	GlyphCol = Cols - 1
)

// Pins names the GPIO lines wired to the HD44780 in 4-bit mode.
type Pins struct {
	RS string
	E  string
	D4 string
	D5 string
	D6 string
	D7 string
}

// DefaultPins matches the reference wiring on the Pi header.
var DefaultPins = Pins{
	RS: "GPIO7",
	E:  "GPIO8",
	D4: "GPIO25",
	D5: "GPIO24",
	D6: "GPIO23",
	D7: "GPIO18",
}

// Display renders text at row/column coordinates.
type Display interface {
	// WriteAt writes text starting at the given cell. Text longer than the
	// remaining row is the caller's bug; implementations may truncate.
	WriteAt(row, col int, text string) error

	// Clear blanks the whole matrix.
	Clear() error

	// Close releases display resources.
	Close() error
}
