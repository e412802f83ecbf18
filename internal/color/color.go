// Package color converts between HSV and RGB and parses the color notations
// accepted by the launcher's picker.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSVA is a color in hue (degrees, [0,360)), saturation, value and alpha
// (all [0,1]).
type HSVA struct {
	H, S, V, A float64
}

// Default is the picker's initial color: opaque red.
var Default = HSVA{H: 0, S: 1, V: 1, A: 1}

// HSVToRGB converts hue/saturation/value to red/green/blue in [0,1]
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	i := int(math.Floor(h / 60))
	f := h/60 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch ((i % 6) + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBToHSV converts red/green/blue in [0,1] to hue/saturation/value
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	if maxC != 0 {
		s = delta / maxC
	}
	return h, s, maxC
}

// FromRGBA builds an HSVA from 0-255 channels and a [0,1] alpha
func FromRGBA(r, g, b uint8, a float64) HSVA {
	h, s, v := RGBToHSV(float64(r)/255, float64(g)/255, float64(b)/255)
	return HSVA{H: h, S: s, V: v, A: clamp01(a)}
}

// RGBA returns the color as 0-255 channels
func (c HSVA) RGBA() (r, g, b, a uint8) {
	rf, gf, bf := HSVToRGB(c.H, c.S, c.V)
	return to8(rf), to8(gf), to8(bf), to8(c.A)
}

// Hex formats the color as #RRGGBBAA
func (c HSVA) Hex() string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// CSS formats the color as rgba(r, g, b, a)
func (c HSVA) CSS() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(round2(c.A), 'f', -1, 64))
}

// Parse reads "#rrggbb", "#rrggbbaa", "#r,g,b[,a]", "rgb(r,g,b)" or
// "rgba(r,g,b,a)". The second result is false when text is not a valid color.
func Parse(text string) (HSVA, bool) {
	switch {
	case strings.HasPrefix(text, "rgba("):
		return parseChannels(strings.TrimSuffix(strings.TrimPrefix(text, "rgba("), ")"))
	case strings.HasPrefix(text, "rgb("):
		return parseChannels(strings.TrimSuffix(strings.TrimPrefix(text, "rgb("), ")"))
	case strings.HasPrefix(text, "#"):
		if strings.Contains(text, ",") {
			return parseChannels(text[1:])
		}
		if len(text) == 7 || len(text) == 9 {
			return parseHex(text[1:])
		}
	}
	return HSVA{}, false
}

func parseHex(digits string) (HSVA, bool) {
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return HSVA{}, false
	}
	if len(digits) == 6 {
		return FromRGBA(uint8(n>>16), uint8(n>>8), uint8(n), 1), true
	}
	return FromRGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), float64(uint8(n))/255), true
}

func parseChannels(inner string) (HSVA, bool) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return HSVA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return HSVA{}, false
		}
		ch[i] = uint8(v)
	}
	alpha := 1.0
	if len(parts) == 4 {
		if a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
			alpha = a
		}
	}
	return FromRGBA(ch[0], ch[1], ch[2], alpha), true
}

func to8(f float64) uint8 {
	return uint8(math.Round(clamp01(f) * 255))
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
