//go:build !linux

package display

import "errors"

// RealDisplay is not available on non-Linux platforms.
type RealDisplay struct{}

// NewRealDisplay returns an error on non-Linux platforms.
func NewRealDisplay(p Pins) (*RealDisplay, error) {
	return nil, errors.New("display: not supported on this platform (requires Linux GPIO)")
}

// WriteAt is not implemented on non-Linux platforms.
func (d *RealDisplay) WriteAt(row, col int, text string) error {
	return errors.New("display: not supported")
}

// Clear is not implemented on non-Linux platforms.
func (d *RealDisplay) Clear() error {
	return errors.New("display: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *RealDisplay) Close() error {
	return nil
}
