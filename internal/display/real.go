//go:build linux

package display

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/hd44780"
	"periph.io/x/host/v3"
)

// RealDisplay drives an HD44780 LCD through periph.io GPIO pins.
type RealDisplay struct {
	dev *hd44780.Dev
}

// NewRealDisplay initializes the periph host, resolves the pins, and resets
// the controller into 4-bit two-line mode.
func NewRealDisplay(p Pins) (*RealDisplay, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	rs, err := pinByName(p.RS)
	if err != nil {
		return nil, err
	}
	e, err := pinByName(p.E)
	if err != nil {
		return nil, err
	}

	var data []gpio.PinOut
	for _, name := range []string{p.D4, p.D5, p.D6, p.D7} {
		pin, err := pinByName(name)
		if err != nil {
			return nil, err
		}
		data = append(data, pin)
	}

	dev, err := hd44780.New(data, rs, e)
	if err != nil {
		return nil, fmt.Errorf("init hd44780: %w", err)
	}

	return &RealDisplay{dev: dev}, nil
}

// WriteAt positions the cursor and prints text.
func (d *RealDisplay) WriteAt(row, col int, text string) error {
	if err := d.dev.SetCursor(uint8(row), uint8(col)); err != nil {
		return fmt.Errorf("set cursor (%d,%d): %w", row, col, err)
	}
	if err := d.dev.Print(text); err != nil {
		return fmt.Errorf("print at (%d,%d): %w", row, col, err)
	}
	return nil
}

// Clear resets the controller, blanking the matrix.
func (d *RealDisplay) Clear() error {
	return d.dev.Reset()
}

// Close blanks the display and releases it.
func (d *RealDisplay) Close() error {
	return d.dev.Halt()
}

func pinByName(name string) (gpio.PinOut, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %q not found", name)
	}
	return pin, nil
}
