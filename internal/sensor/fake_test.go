package sensor

import (
	"errors"
	"testing"
)

func TestFakeReaderRead(t *testing.T) {
	samples := []Sample{
		{TemperatureC: 21.5, Humidity: 40},
		{TemperatureC: 22.0, Humidity: 41},
		{TemperatureC: 22.5, Humidity: 42},
	}

	f := NewFakeReader(samples)

	for i, want := range samples {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("sample %d: expected %+v, got %+v", i, want, got)
		}
	}

	// Further reads repeat the last sample.
	got, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != samples[len(samples)-1] {
		t.Errorf("repeat read: expected %+v, got %+v", samples[len(samples)-1], got)
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)

	_, err := f.Read()
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeReaderError(t *testing.T) {
	f := NewFakeReader([]Sample{{TemperatureC: 20, Humidity: 50}})
	f.ReadError = errors.New("simulated error")

	_, err := f.Read()
	if err == nil {
		t.Error("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFakeReaderClose(t *testing.T) {
	f := NewFakeReader([]Sample{{TemperatureC: 20, Humidity: 50}})

	if f.Closed {
		t.Error("should not be closed initially")
	}

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakeReaderReset(t *testing.T) {
	samples := []Sample{
		{TemperatureC: 20, Humidity: 50},
		{TemperatureC: 25, Humidity: 55},
	}

	f := NewFakeReader(samples)
	f.Read()
	f.Reset()

	got, _ := f.Read()
	if got != samples[0] {
		t.Errorf("after reset: expected %+v, got %+v", samples[0], got)
	}
}
