package gamemath

import "math"

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ShadowScale returns the scale (and opacity) of a ground shadow for an
// object dist pixels above its resting position. It is 1 on the ground and
// shrinks linearly to minScale at falloff pixels.
func ShadowScale(dist, falloff, minScale float64) float64 {
	if dist <= 0 || falloff <= 0 {
		return 1
	}
	return math.Max(minScale, 1-dist/falloff)
}

// Oscillate returns amplitude * cos(t*speed + phase).
func Oscillate(t, speed, phase, amplitude float64) float64 {
	return math.Cos(t*speed+phase) * amplitude
}

// Bob returns amplitude * sin(t/period).
func Bob(t, period, amplitude float64) float64 {
	if period == 0 {
		return 0
	}
	return math.Sin(t/period) * amplitude
}
