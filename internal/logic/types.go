// Package logic contains pure business logic for climate trend tracking and
// intensity mapping. This package has NO external dependencies (no I2C, GPIO,
// OS, or time.Sleep).
package logic

// Directive is the rendering instruction for the trend indicator glyph.
type Directive string

const (
	// DirectiveUp means the integer temperature rose this cycle.
	DirectiveUp Directive = "UP"
	// DirectiveDown means the integer temperature fell this cycle.
	DirectiveDown Directive = "DOWN"
	// DirectiveSteadyShow means the temperature is steady and the equal
	// glyph should be drawn.
	DirectiveSteadyShow Directive = "STEADY_SHOW"
	// DirectiveSteadyBlank means the temperature is steady and the glyph
	// cell should be blanked.
	DirectiveSteadyBlank Directive = "STEADY_BLANK"
	// DirectiveNone means the glyph cell is left exactly as it was.
	DirectiveNone Directive = "NONE"
)

// Reading is one successful sensor sample with derived values.
type Reading struct {
	TemperatureC float64
	TemperatureF float64
	Humidity     float64 // relative humidity, percent
	HeatIndexC   float64
	HeatIndexF   float64
}

// NewReading derives the Fahrenheit and heat index values from a raw
// Celsius temperature and relative humidity sample.
func NewReading(tempC, humidity float64) Reading {
	tf := CToF(tempC)
	hif := HeatIndexF(tf, humidity)
	return Reading{
		TemperatureC: tempC,
		TemperatureF: tf,
		Humidity:     humidity,
		HeatIndexC:   FToC(hif),
		HeatIndexF:   hif,
	}
}

// CycleCounts tracks per-directive totals since startup.
type CycleCounts struct {
	Up     int
	Down   int
	Steady int
}
