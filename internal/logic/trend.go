package logic

// Steady-indicator cadence thresholds, counted in polling cycles. The cycle
// counter is the clock here: the blink cadence tracks loop iterations, not
// wall time, so it is unaffected by sensor latency jitter.
const (
	steadyShowStart  = 100 // counts above this draw the equal glyph
	steadyShowEnd    = 150 // ...until this
	steadyBlankStart = 200 // counts above this blank the glyph cell
	steadyWrap       = 500 // counter wraps past this, restarting the cadence
)

// Trend tracks whether the integer temperature is rising, falling or steady
// across polling cycles. The zero value is the startup state: last
// temperature 0, steady counter 0.
type Trend struct {
	lastTempC    int
	steadyCycles int
}

// Update consumes the integer-truncated Celsius temperature for one cycle,
// mutates the trend state, and returns the directive for the indicator glyph.
//
// The steady windows are asymmetric on purpose: counts in (100,150) draw the
// glyph, counts above 200 blank it, and every other count (including the
// (150,200] gap) leaves the cell untouched. The exact comparisons matter.
func (t *Trend) Update(cur int) Directive {
	if cur < t.lastTempC {
		t.lastTempC = cur
		t.steadyCycles = 0
		return DirectiveDown
	}
	if cur > t.lastTempC {
		t.lastTempC = cur
		t.steadyCycles = 0
		return DirectiveUp
	}

	if t.steadyCycles > steadyWrap {
		t.steadyCycles = 0
	}

	d := DirectiveNone
	switch {
	case t.steadyCycles > steadyShowStart && t.steadyCycles < steadyShowEnd:
		d = DirectiveSteadyShow
	case t.steadyCycles > steadyBlankStart:
		d = DirectiveSteadyBlank
	}
	t.steadyCycles++
	return d
}

// SteadyCycles returns how many consecutive cycles the integer temperature
// has been unchanged, modulo the wrap.
func (t *Trend) SteadyCycles() int {
	return t.steadyCycles
}

// LastTempC returns the integer temperature from the most recent update.
func (t *Trend) LastTempC() int {
	return t.lastTempC
}
