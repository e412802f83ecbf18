package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#336699", "#336699FF"},
		{"#33669980", "#33669980"},
		{"#ff0000", "#FF0000FF"},
		{"#10, 20, 30", "#0A141EFF"},
		{"#10,20,30,0.5", "#0A141E80"},
		{"#1,2,34", "#010222FF"},
		{"rgb(0, 128, 255)", "#0080FFFF"},
		{"rgba(255,255,255,0)", "#FFFFFF00"},
		{"rgba(1,2,3,bogus)", "#010203FF"},
	}
	for _, tt := range tests {
		c, ok := Parse(tt.in)
		assert.True(t, ok, tt.in)
		assert.Equal(t, tt.want, c.Hex(), tt.in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"#", "#12", "#zzzzzz", "#1234567", "rgb(1,2)", "rgb(300,0,0)", "rgb(a,b,c)", "red"} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, rgb := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.2, 0.4, 0.6}, {1, 1, 1}, {0, 0, 0}, {0.9, 0.1, 0.5}} {
		h, s, v := RGBToHSV(rgb[0], rgb[1], rgb[2])
		r, g, b := HSVToRGB(h, s, v)
		assert.InDelta(t, rgb[0], r, 1e-9)
		assert.InDelta(t, rgb[1], g, 1e-9)
		assert.InDelta(t, rgb[2], b, 1e-9)
	}
}

func TestAdjust(t *testing.T) {
	c := HSVA{H: 2, S: 0.99, V: 0.01, A: 1}

	assert.InDelta(t, 357, c.AddHue(-HueStep).H, 1e-9)
	assert.InDelta(t, 7, c.AddHue(HueStep).H, 1e-9)
	assert.InDelta(t, 0, HSVA{H: 355}.AddHue(HueStep).H, 1e-9)
	assert.Equal(t, 1.0, c.AddSaturation(SVStep).S)
	assert.Equal(t, 0.0, c.AddValue(-SVStep).V)
	assert.Equal(t, 1.0, c.AddAlpha(AlphaStep).A)
	assert.InDelta(t, 0.98, c.AddAlpha(-AlphaStep).A, 1e-9)
}

func TestCSS(t *testing.T) {
	c, _ := Parse("rgba(10,20,30,0.5)")
	assert.Equal(t, "rgba(10, 20, 30, 0.5)", c.CSS())
}
