package formats

// Default frequency range (ppm) used when a format carries no axis
// information. The text matrix format synthesizes both axes over this
// range; callers needing real axes must supply them via the sidecar and
// correct outside this layer.
const (
	DefaultAxisMin = 0.0
	DefaultAxisMax = 12.0
)

// linspace returns n evenly spaced values from lo to hi inclusive.
// A single point collapses to lo.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// DefaultAxis returns the placeholder axis for n points.
func DefaultAxis(n int) []float64 {
	return linspace(DefaultAxisMin, DefaultAxisMax, n)
}
