package logic

import "math"

// CToF converts Celsius to Fahrenheit.
func CToF(c float64) float64 {
	return c*1.8 + 32
}

// FToC converts Fahrenheit to Celsius.
func FToC(f float64) float64 {
	return (f - 32) / 1.8
}

// HeatIndexF computes the heat index in Fahrenheit from a Fahrenheit
// temperature and relative humidity percentage. It uses the NWS Rothfusz
// regression, falling back to the Steadman simple formula when the result
// is below 79 degF, with the standard low-humidity and cool-humid
// adjustments. Accuracy is about +/-1.3 degF against the NWS tables.
func HeatIndexF(tF, rh float64) float64 {
	hi := 0.5 * (tF + 61.0 + (tF-68.0)*1.2 + rh*0.094)
	if hi <= 79 {
		return hi
	}

	hi = -42.379 +
		2.04901523*tF +
		10.14333127*rh +
		-0.22475541*tF*rh +
		-0.00683783*tF*tF +
		-0.05481717*rh*rh +
		0.00122874*tF*tF*rh +
		0.00085282*tF*rh*rh +
		-0.00000199*tF*tF*rh*rh

	switch {
	case rh < 13 && tF >= 80 && tF <= 112:
		hi -= ((13 - rh) / 4) * math.Sqrt((17-math.Abs(tF-95))/17)
	case rh > 85 && tF >= 80 && tF <= 87:
		hi += ((rh - 85) / 10) * ((87 - tF) / 5)
	}
	return hi
}

// HeatIndexC computes the heat index in Celsius from a Celsius temperature
// and relative humidity percentage.
func HeatIndexC(tC, rh float64) float64 {
	return FToC(HeatIndexF(CToF(tC), rh))
}
