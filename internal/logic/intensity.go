package logic

// Intensity mapping endpoints: temperature domain [-40, 80] degC onto the
// 8-bit actuation range [0, 255].
const (
	intensityTempMin = -40
	intensityTempMax = 80
	intensityMin     = 0
	intensityMax     = 255
)

// MapIntensity linearly maps tempC onto the intensity range, truncating to
// an integer. Inputs outside [-40, 80] are NOT clamped: the mapping
// extrapolates, and the caller owns any clamping where out-of-range
// actuation values would be unsafe.
func MapIntensity(tempC int) int {
	return (tempC-intensityTempMin)*(intensityMax-intensityMin)/(intensityTempMax-intensityTempMin) + intensityMin
}
