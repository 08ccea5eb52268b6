//go:build linux

package led

import (
	"fmt"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// pwmPeriod is the software PWM period. 100Hz is above flicker perception
// and slow enough for character-device line toggling.
const pwmPeriod = 10 * time.Millisecond

// RealDriver runs software PWM on a GPIO output line using the Linux GPIO
// character device.
type RealDriver struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line

	mu    sync.Mutex
	level int

	done chan struct{}
	wg   sync.WaitGroup
}

// NewRealDriver requests the line as output (low) and starts the waveform
// goroutine at level 0.
func NewRealDriver(pin int) (*RealDriver, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LED pin %d: %w", pin, err)
	}

	d := &RealDriver{
		chip: chip,
		line: line,
		done: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.pwmLoop()
	return d, nil
}

// SetLevel updates the target intensity for the waveform goroutine.
func (d *RealDriver) SetLevel(level int) error {
	d.mu.Lock()
	d.level = level
	d.mu.Unlock()
	return nil
}

// pwmLoop generates the waveform. On-time is level/255 of the period;
// levels at or below 0 hold the line low, at or above 255 hold it high.
func (d *RealDriver) pwmLoop() {
	defer d.wg.Done()
	for {
		select {
		case <-d.done:
			return
		default:
		}

		d.mu.Lock()
		level := d.level
		d.mu.Unlock()

		on := time.Duration(level) * pwmPeriod / 255
		if on < 0 {
			on = 0
		}
		if on > pwmPeriod {
			on = pwmPeriod
		}

		if on > 0 {
			d.line.SetValue(1)
			time.Sleep(on)
		}
		if off := pwmPeriod - on; off > 0 {
			d.line.SetValue(0)
			time.Sleep(off)
		}
	}
}

// Close stops the waveform, drives the line low, and releases GPIO resources.
func (d *RealDriver) Close() error {
	close(d.done)
	d.wg.Wait()

	var errs []error
	if d.line != nil {
		if err := d.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lower LED pin: %w", err))
		}
		if err := d.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close LED pin: %w", err))
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
