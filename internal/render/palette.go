package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle in degrees; stepping hues by it keeps neighbors in the
// sequence far apart on the color wheel.
const goldenAngle = 137.50776405003785

// palette returns n visually distinct pastel colors using HSV generation.
// Deterministic for a given seed.
func palette(n int, seed int64) []color.RGBA {
	rng := rand.New(rand.NewSource(seed))

	colors := make([]color.RGBA, n)
	hue := rng.Float64() * 360
	for i := range colors {
		hue = math.Mod(hue+goldenAngle, 360)
		sat := 0.35 + rng.Float64()*0.3
		val := 0.7 + rng.Float64()*0.25

		c := colorful.Hsv(hue, sat, val)
		red, green, blue := c.RGB255()
		colors[i] = color.RGBA{R: red, G: green, B: blue, A: 255}
	}
	return colors
}
