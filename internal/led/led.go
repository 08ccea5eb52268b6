// Package led drives the indicator LED brightness with hardware abstraction.
// The real implementation runs software PWM on a GPIO line.
// The fake implementation records levels for testing without hardware.
package led

// Driver sets the LED intensity.
type Driver interface {
	// SetLevel sets the target intensity. The nominal range is 0..255;
	// out-of-range values are accepted and saturate at the waveform, since
	// a duty cycle outside [0,1] has no meaning.
	SetLevel(level int) error

	// Close stops the waveform and releases the line.
	Close() error
}

// DefaultPin is the BCM line the LED is wired to.
const DefaultPin = 12
