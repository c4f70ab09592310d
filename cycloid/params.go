package cycloid

import "math"

// Params is one evaluation of the cycloid node.
type Params struct {
	Radius1 float64 // orbit radius of body 1
	Radius2 float64 // orbit radius of body 2
	Period1 float64 // time for body 1 to complete one orbit; 0 holds it still
	Period2 float64 // time for body 2 to complete one orbit; 0 holds it still
	Offset1 float64 // phase of body 1 as a fraction of its orbit, in [0, 1]
	Offset2 float64 // phase of body 2 as a fraction of its orbit, in [0, 1]

	// Time is the length of the sampled time window.
	Time float64

	// Start is the time at which the window begins.
	Start float64

	// Resolution is the number of vertices sampled across the window.
	Resolution int

	Centering Centering

	// Closed adds an edge from the last vertex back to the first.
	Closed bool
}

// DefaultParams returns the node defaults.
func DefaultParams() Params {
	return Params{
		Radius1:    10,
		Radius2:    2,
		Period1:    11,
		Period2:    1,
		Offset1:    0,
		Offset2:    0,
		Time:       11,
		Resolution: 200,
		Centering:  CenterP1,
	}
}

// Minimum resolution accepted by the sanitizer.
const MinResolution = 3

// Sanitize clamps every parameter into its domain: radii, periods and time
// are non-negative, offsets lie in [0, 1] and Resolution is at least
// MinResolution. NaN values clamp to the lower bound.
func (p Params) Sanitize() Params {
	p.Radius1 = clampMin(p.Radius1, 0)
	p.Radius2 = clampMin(p.Radius2, 0)
	p.Period1 = clampMin(p.Period1, 0)
	p.Period2 = clampMin(p.Period2, 0)
	p.Offset1 = clampUnit(p.Offset1)
	p.Offset2 = clampUnit(p.Offset2)
	p.Time = clampMin(p.Time, 0)
	p.Start = finiteOr(p.Start, 0)
	p.Resolution = max(p.Resolution, MinResolution)
	return p
}

func clampMin(v, lo float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	return v
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clampUnit(v float64) float64 {
	return math.Min(clampMin(v, 0), 1)
}

// Inputs holds vectorized node parameters. Each list is broadcast against
// the others; Centering and Closed apply to every row.
type Inputs struct {
	Radius1    []float64
	Radius2    []float64
	Period1    []float64
	Period2    []float64
	Offset1    []float64
	Offset2    []float64
	Time       []float64
	Resolution []int

	// Start is shared by every row.
	Start     float64
	Centering Centering
	Closed    bool
}

// InputsFrom wraps a single parameter set as one-element lists.
func InputsFrom(p Params) Inputs {
	return Inputs{
		Radius1:    []float64{p.Radius1},
		Radius2:    []float64{p.Radius2},
		Period1:    []float64{p.Period1},
		Period2:    []float64{p.Period2},
		Offset1:    []float64{p.Offset1},
		Offset2:    []float64{p.Offset2},
		Time:       []float64{p.Time},
		Resolution: []int{p.Resolution},
		Start:      p.Start,
		Centering:  p.Centering,
		Closed:     p.Closed,
	}
}

// Sanitize returns a copy of in with every value clamped as by
// [Params.Sanitize]. List lengths are preserved.
func (in Inputs) Sanitize() Inputs {
	out := in
	out.Radius1 = mapFloats(in.Radius1, func(v float64) float64 { return clampMin(v, 0) })
	out.Radius2 = mapFloats(in.Radius2, func(v float64) float64 { return clampMin(v, 0) })
	out.Period1 = mapFloats(in.Period1, func(v float64) float64 { return clampMin(v, 0) })
	out.Period2 = mapFloats(in.Period2, func(v float64) float64 { return clampMin(v, 0) })
	out.Offset1 = mapFloats(in.Offset1, clampUnit)
	out.Offset2 = mapFloats(in.Offset2, clampUnit)
	out.Time = mapFloats(in.Time, func(v float64) float64 { return clampMin(v, 0) })
	out.Start = finiteOr(in.Start, 0)
	out.Resolution = make([]int, len(in.Resolution))
	for i, n := range in.Resolution {
		out.Resolution[i] = max(n, MinResolution)
	}
	return out
}

func mapFloats(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}
