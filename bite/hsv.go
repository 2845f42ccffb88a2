package bite

import "math"

// rgbToHSV takes r, g, b in [0,1] and returns h in [0,360) and s, v in [0,1].
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn

	if d != 0 {
		switch mx {
		case r:
			h = math.Mod((g-b)/d, 6.0)
		case g:
			h = (b-r)/d + 2.0
		default:
			h = (r-g)/d + 4.0
		}
		h *= 60.0
		if h < 0 {
			h += 360.0
		}
	}

	if mx != 0 {
		s = d / mx
	}
	return h, s, mx
}

// pixelClass is the outcome of the colour tests on one pixel.
type pixelClass struct {
	skip      bool
	red       bool
	yellow    bool
	strongRed bool
}

// classifyPixel applies the value/saturation floor, then the strong red,
// red and yellow tests. Red wins over yellow.
func classifyPixel(r8, g8, b8 uint8) pixelClass {
	r := float64(r8) / 255.0
	g := float64(g8) / 255.0
	b := float64(b8) / 255.0

	h, s, v := rgbToHSV(r, g, b)
	if v < 0.25 || s < 0.18 {
		return pixelClass{skip: true}
	}

	maxGB := math.Max(g, b)

	redHSV := s >= 0.24 && v >= 0.30 && (h <= 15 || h >= 345)
	yellowHSV := s >= 0.22 && v >= 0.45 && h >= 35 && h <= 70
	redRGB := r >= 0.45 && r-maxGB >= 0.15 && r/(g+1e-6) >= 1.25 && r/(b+1e-6) >= 1.30
	yellowRGB := r >= 0.42 && g >= 0.42 && b <= 0.38 &&
		math.Min(r, g)/(math.Max(r, g)+1e-6) >= 0.78 &&
		r-b >= 0.10 && g-b >= 0.10
	strong := r >= 0.65 && g <= 0.35 && b <= 0.35 && r-maxGB >= 0.18

	c := pixelClass{strongRed: strong}
	c.red = (redHSV && redRGB) || strong
	c.yellow = !c.red && yellowHSV && yellowRGB
	return c
}
