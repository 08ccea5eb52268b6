package logic

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	if got := CToF(0); got != 32 {
		t.Errorf("CToF(0): expected 32, got %v", got)
	}
	if got := CToF(100); got != 212 {
		t.Errorf("CToF(100): expected 212, got %v", got)
	}
	if got := FToC(32); got != 0 {
		t.Errorf("FToC(32): expected 0, got %v", got)
	}
	if got := FToC(-40); got != -40 {
		t.Errorf("FToC(-40): expected -40, got %v", got)
	}
}

func TestHeatIndexSimpleRange(t *testing.T) {
	// Below 79 degF the Steadman simple formula is used directly.
	got := HeatIndexF(75, 50)
	want := 0.5 * (75 + 61 + (75-68)*1.2 + 50*0.094)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("HeatIndexF(75, 50): expected %v, got %v", want, got)
	}
}

func TestHeatIndexRegression(t *testing.T) {
	// Reference points from the NWS heat index table, which rounds to
	// whole degrees; the regression itself is good to about +/-1.3 degF.
	cases := []struct {
		tF, rh float64
		want   float64
	}{
		{80, 40, 80},
		{90, 60, 100},
		{95, 55, 110},
	}

	for _, tc := range cases {
		got := HeatIndexF(tc.tF, tc.rh)
		if math.Abs(got-tc.want) > 2 {
			t.Errorf("HeatIndexF(%v, %v): expected ~%v, got %v", tc.tF, tc.rh, tc.want, got)
		}
	}
}

func TestHeatIndexCelsius(t *testing.T) {
	// 30 degC at 70% RH is about 35 degC on the NWS table.
	got := HeatIndexC(30, 70)
	if math.Abs(got-35) > 0.5 {
		t.Errorf("HeatIndexC(30, 70): expected ~35, got %v", got)
	}
}

func TestNewReading(t *testing.T) {
	r := NewReading(30, 70)

	if r.TemperatureC != 30 {
		t.Errorf("TemperatureC: expected 30, got %v", r.TemperatureC)
	}
	if math.Abs(r.TemperatureF-86) > 1e-9 {
		t.Errorf("TemperatureF: expected 86, got %v", r.TemperatureF)
	}
	if r.Humidity != 70 {
		t.Errorf("Humidity: expected 70, got %v", r.Humidity)
	}
	if math.Abs(r.HeatIndexF-CToF(r.HeatIndexC)) > 1e-9 {
		t.Errorf("heat index units disagree: %vC vs %vF", r.HeatIndexC, r.HeatIndexF)
	}
	if r.HeatIndexF <= r.TemperatureF {
		t.Errorf("expected heat index above air temperature in humid heat, got %v <= %v", r.HeatIndexF, r.TemperatureF)
	}
}
