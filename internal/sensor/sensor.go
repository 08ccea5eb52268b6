// Package sensor provides temperature/humidity acquisition with hardware
// abstraction. The real implementation drives an SHT3x over I2C.
// The fake implementation allows testing without hardware.
package sensor

// Sample is one raw measurement from the sensor.
type Sample struct {
	TemperatureC float64
	Humidity     float64 // relative humidity, percent
}

// Reader reads temperature/humidity samples.
type Reader interface {
	// Read returns one sample, or an error on sensor communication failure.
	// There is no retry logic here; callers decide what a failure means.
	Read() (Sample, error)

	// Close releases sensor resources.
	Close() error
}

// Default I2C wiring for the SHT3x breakout.
const (
	DefaultBus  = 1    // /dev/i2c-1
	DefaultAddr = 0x44 // ADDR pin low
)
