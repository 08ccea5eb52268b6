package display

import (
	"fmt"
	"strings"

	"github.com/sweeney/climate-display/internal/logic"
)

// degree is the HD44780 character ROM degree sign.
const degree = "\xdf"

// Trend indicator glyphs. The character ROM has no arrows, so ASCII stands in.
const (
	GlyphUp     = "^"
	GlyphDown   = "v"
	GlyphSteady = "="
	GlyphBlank  = " "
)

// Read-failure message, one string per row.
const (
	ErrRow0 = "Failed to read"
	ErrRow1 = "sensor"
)

// LabelRow returns the fixed top-row label, padded to stop short of the
// glyph column.
func LabelRow() string {
	return pad("Temperature", GlyphCol)
}

// ValueRow formats the bottom row: integer Celsius and one-decimal
// Fahrenheit, each with the degree sign and unit suffix. Padded so a
// shorter value overwrites the remains of a longer one.
func ValueRow(r logic.Reading) string {
	s := fmt.Sprintf("%d%sC %.1f%sF", int(r.TemperatureC), degree, r.TemperatureF, degree)
	return pad(s, Cols)
}

// Glyph maps a trend directive to the character for the indicator cell.
// The second return is false when the cell must be left untouched.
func Glyph(d logic.Directive) (string, bool) {
	switch d {
	case logic.DirectiveUp:
		return GlyphUp, true
	case logic.DirectiveDown:
		return GlyphDown, true
	case logic.DirectiveSteadyShow:
		return GlyphSteady, true
	case logic.DirectiveSteadyBlank:
		return GlyphBlank, true
	default:
		return "", false
	}
}

// pad space-fills s to width, truncating if it is already wider.
func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
