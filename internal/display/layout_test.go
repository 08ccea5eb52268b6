package display

import (
	"testing"

	"github.com/sweeney/climate-display/internal/logic"
)

func TestLabelRow(t *testing.T) {
	row := LabelRow()
	if len(row) != GlyphCol {
		t.Errorf("label row length: expected %d, got %d", GlyphCol, len(row))
	}
	if row[:11] != "Temperature" {
		t.Errorf("unexpected label row: %q", row)
	}
}

func TestValueRow(t *testing.T) {
	cases := []struct {
		tempC, tempF float64
		want         string
	}{
		{23.6, 74.48, "23\xdfC 74.5\xdfF"},
		{-10.2, 13.64, "-10\xdfC 13.6\xdfF"},
		{0, 32, "0\xdfC 32.0\xdfF"},
	}

	for _, tc := range cases {
		r := logic.Reading{TemperatureC: tc.tempC, TemperatureF: tc.tempF}
		got := ValueRow(r)
		if len(got) != Cols {
			t.Errorf("value row for %v: expected width %d, got %d (%q)", tc.tempC, Cols, len(got), got)
		}
		if got[:len(tc.want)] != tc.want {
			t.Errorf("value row for %v: expected prefix %q, got %q", tc.tempC, tc.want, got)
		}
		for _, c := range got[len(tc.want):] {
			if c != ' ' {
				t.Errorf("value row for %v: expected space padding, got %q", tc.tempC, got)
				break
			}
		}
	}
}

func TestValueRowTruncation(t *testing.T) {
	// Absurd extrapolated values must never spill past the row.
	r := logic.Reading{TemperatureC: -12345678, TemperatureF: -22222188.4}
	got := ValueRow(r)
	if len(got) != Cols {
		t.Errorf("expected width %d, got %d (%q)", Cols, len(got), got)
	}
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		directive logic.Directive
		want      string
		draw      bool
	}{
		{logic.DirectiveUp, GlyphUp, true},
		{logic.DirectiveDown, GlyphDown, true},
		{logic.DirectiveSteadyShow, GlyphSteady, true},
		{logic.DirectiveSteadyBlank, GlyphBlank, true},
		{logic.DirectiveNone, "", false},
	}

	for _, tc := range cases {
		got, draw := Glyph(tc.directive)
		if draw != tc.draw {
			t.Errorf("%s: expected draw=%v, got %v", tc.directive, tc.draw, draw)
		}
		if got != tc.want {
			t.Errorf("%s: expected glyph %q, got %q", tc.directive, tc.want, got)
		}
	}
}
