package colors

// Autumn returns n colours evenly spaced on a red to yellow ramp,
// the same ramp as matplotlib's "autumn" colormap.
// Autumn(1) is pure red; Autumn(0) is nil.
func Autumn(n int) []RGB {
	return Ramp(n, Red, RGB{255, 255, 0})
}

// Ramp returns n colours linearly blended in RGB space from start to end.
func Ramp(n int, start, end RGB) []RGB {
	if n <= 0 {
		return nil
	}
	from, to := start.colorful(), end.colorful()
	out := make([]RGB, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = FromColorful(from.BlendRgb(to, t))
	}
	return out
}
