package astro

import "math"

// BVToTemperature estimates a blackbody temperature in Kelvin from a B−V
// colour index (Ballesteros 2012).
func BVToTemperature(bv float64) float64 {
	return 4600 * (1/(0.92*bv+1.7) + 1/(0.92*bv+0.62))
}

// RGB is a linear colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// TemperatureToRGB maps a blackbody temperature to an approximate display
// colour using the usual piecewise fit over T/100. Each channel is clamped
// to [0, 1].
func TemperatureToRGB(kelvin float64) RGB {
	t := kelvin / 100
	var r, g, b float64

	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return RGB{
		R: clamp01(r / 255),
		G: clamp01(g / 255),
		B: clamp01(b / 255),
	}
}

// StarColor is TemperatureToRGB(BVToTemperature(bv)).
func StarColor(bv float64) RGB {
	return TemperatureToRGB(BVToTemperature(bv))
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
