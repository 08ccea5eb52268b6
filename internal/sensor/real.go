//go:build linux

package sensor

import (
	"fmt"

	i2c "github.com/d2r2/go-i2c"
	logger "github.com/d2r2/go-logger"
	sht3x "github.com/d2r2/go-sht3x"
)

// RealReader reads an SHT3x sensor over the Linux I2C character device.
type RealReader struct {
	bus    *i2c.I2C
	sensor *sht3x.SHT3X
}

// NewRealReader opens the I2C bus and resets the sensor.
func NewRealReader(bus int, addr uint8) (*RealReader, error) {
	// The d2r2 drivers log every transaction at debug level; keep them quiet.
	logger.ChangePackageLogLevel("i2c", logger.InfoLevel)
	logger.ChangePackageLogLevel("sht3x", logger.InfoLevel)

	conn, err := i2c.NewI2C(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d addr %#x: %w", bus, addr, err)
	}

	dev := sht3x.NewSHT3X()
	if err := dev.Reset(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("reset sht3x: %w", err)
	}

	return &RealReader{
		bus:    conn,
		sensor: dev,
	}, nil
}

// Read performs a single-shot measurement.
func (r *RealReader) Read() (Sample, error) {
	temp, rh, err := r.sensor.ReadTemperatureAndRelativeHumidity(r.bus, sht3x.RepeatabilityLow)
	if err != nil {
		return Sample{}, fmt.Errorf("read sht3x: %w", err)
	}
	return Sample{
		TemperatureC: float64(temp),
		Humidity:     float64(rh),
	}, nil
}

// Close releases the I2C bus.
func (r *RealReader) Close() error {
	if r.bus == nil {
		return nil
	}
	return r.bus.Close()
}
