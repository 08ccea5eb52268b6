// Command climate-display polls a temperature/humidity sensor, renders the
// readings and a trend indicator on a 16x2 character LCD, and drives an LED's
// brightness proportionally to temperature.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/climate-display/internal/display"
	"github.com/sweeney/climate-display/internal/led"
	"github.com/sweeney/climate-display/internal/logging"
	"github.com/sweeney/climate-display/internal/logic"
	"github.com/sweeney/climate-display/internal/sensor"
	"github.com/sweeney/climate-display/internal/status"
)

func main() {
	poll := flag.Duration("poll", time.Second, "sensor polling interval")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "heartbeat log interval (0 to disable)")
	i2cBus := flag.Int("i2c-bus", sensor.DefaultBus, "I2C bus number for the SHT3x")
	i2cAddr := flag.Int("i2c-addr", sensor.DefaultAddr, "I2C address of the SHT3x")
	ledPin := flag.Int("led-pin", led.DefaultPin, "BCM pin number for the LED")
	printReading := flag.Bool("print-reading", false, "Read the sensor once, print, and exit")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logJSON := flag.Bool("log-json", false, "log JSON instead of the console format")

	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logging.New(level, *logJSON))

	if err := run(*poll, *heartbeat, *i2cBus, uint8(*i2cAddr), *ledPin, *printReading); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(poll, heartbeat time.Duration, i2cBus int, i2cAddr uint8, ledPin int, printReading bool) error {
	// Initialize sensor
	reader, err := sensor.NewRealReader(i2cBus, i2cAddr)
	if err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}
	defer reader.Close()

	// Print reading mode
	if printReading {
		sample, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read sensor: %w", err)
		}
		r := logic.NewReading(sample.TemperatureC, sample.Humidity)
		fmt.Printf("humidity: %.1f%%  temperature: %.1fC / %.1fF  heat index: %.1fC / %.1fF\n",
			r.Humidity, r.TemperatureC, r.TemperatureF, r.HeatIndexC, r.HeatIndexF)
		return nil
	}

	// Initialize display
	disp, err := display.NewRealDisplay(display.DefaultPins)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Close()

	// Initialize LED
	drv, err := led.NewRealDriver(ledPin)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer drv.Close()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      poll.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		I2CBus:      i2cBus,
		I2CAddr:     i2cAddr,
		LEDPin:      ledPin,
	})

	slog.Info("started",
		"poll", poll,
		"heartbeat", heartbeat,
		"i2c_bus", i2cBus,
		"i2c_addr", fmt.Sprintf("%#x", i2cAddr),
		"led_pin", ledPin,
	)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, disp, drv, tracker, heartbeat, time.Now, ticker.C, sigCh)
}

func runLoop(reader sensor.Reader, disp display.Display, drv led.Driver, tracker *status.Tracker, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	var trend logic.Trend
	showErr := false // failure-blink phase, toggled on every failed cycle
	lastHeartbeat := now()

	for {
		select {
		case s := <-sig:
			slog.Info("received signal, shutting down", "signal", s.String())
			if err := disp.Clear(); err != nil {
				slog.Warn("clear display", "err", err)
			}
			if err := drv.SetLevel(0); err != nil {
				slog.Warn("lower led", "err", err)
			}
			return nil

		case <-tick:
			t := now()

			sample, err := reader.Read()
			if err != nil {
				// Alternate the failure message with a blank screen.
				// Trend state and the LED are left untouched: acquisition
				// failures are invisible to the trend machine.
				slog.Error("sensor read failed", "err", err)
				if tracker != nil {
					tracker.RecordFailure()
				}
				showErr = !showErr
				if showErr {
					writeErrScreen(disp)
				} else if err := disp.Clear(); err != nil {
					slog.Warn("clear display", "err", err)
				}
				continue
			}

			reading := logic.NewReading(sample.TemperatureC, sample.Humidity)
			tempC := int(reading.TemperatureC) // truncate toward zero
			directive := trend.Update(tempC)
			level := logic.MapIntensity(tempC)

			if err := disp.WriteAt(0, 0, display.LabelRow()); err != nil {
				slog.Warn("write label row", "err", err)
			}
			if err := disp.WriteAt(1, 0, display.ValueRow(reading)); err != nil {
				slog.Warn("write value row", "err", err)
			}
			if glyph, draw := display.Glyph(directive); draw {
				if err := disp.WriteAt(display.GlyphRow, display.GlyphCol, glyph); err != nil {
					slog.Warn("write glyph", "err", err)
				}
			}

			if err := drv.SetLevel(level); err != nil {
				slog.Warn("set led level", "err", err)
			}

			slog.Info("reading",
				"humidity_pct", reading.Humidity,
				"temp_c", reading.TemperatureC,
				"temp_f", reading.TemperatureF,
				"heat_index_c", reading.HeatIndexC,
				"heat_index_f", reading.HeatIndexF,
				"trend", string(directive),
				"led_level", level,
			)

			if tracker != nil {
				tracker.RecordCycle(reading, directive, level)

				if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
					lastHeartbeat = t
					snap := tracker.Snapshot()
					slog.Info("heartbeat",
						"uptime", snap.Uptime().Round(time.Second),
						"cycles", snap.Cycles,
						"failures", snap.Failures,
						"up", snap.Counts.Up,
						"down", snap.Counts.Down,
						"steady", snap.Counts.Steady,
					)
				}
			}
		}
	}
}

// writeErrScreen blanks the display and writes the two-line failure message.
func writeErrScreen(disp display.Display) {
	if err := disp.Clear(); err != nil {
		slog.Warn("clear display", "err", err)
		return
	}
	if err := disp.WriteAt(0, 0, display.ErrRow0); err != nil {
		slog.Warn("write error row", "err", err)
	}
	if err := disp.WriteAt(1, 0, display.ErrRow1); err != nil {
		slog.Warn("write error row", "err", err)
	}
}
