package color

import "math"

// Keyboard step sizes for the picker controls.
const (
	SVStep    = 0.02
	HueStep   = 5.0
	AlphaStep = 0.02
)

// AddSaturation moves saturation by d, clamped to [0,1]
func (c HSVA) AddSaturation(d float64) HSVA {
	c.S = clamp01(c.S + d)
	return c
}

// AddValue moves value by d, clamped to [0,1]
func (c HSVA) AddValue(d float64) HSVA {
	c.V = clamp01(c.V + d)
	return c
}

// AddHue rotates hue by d degrees, wrapping into [0,360)
func (c HSVA) AddHue(d float64) HSVA {
	c.H = math.Mod(math.Mod(c.H+d, 360)+360, 360)
	return c
}

// AddAlpha moves alpha by d, clamped to [0,1]
func (c HSVA) AddAlpha(d float64) HSVA {
	c.A = clamp01(c.A + d)
	return c
}
