package cycloid

import (
	"fmt"
	"math"

	"github.com/gogpu/geonode"
)

// angle returns the orbit angle at time t for a body with the given period
// and phase offset. A zero period holds the body at its offset.
func angle(t, period, offset float64) float64 {
	if period == 0 {
		return 2 * math.Pi * offset
	}
	return 2 * math.Pi * (t + period*offset) / period
}

// PointAt returns the traced position at absolute time t.
func PointAt(p Params, t float64) geonode.Vec3 {
	s1, c1 := math.Sincos(angle(t, p.Period1, p.Offset1))
	s2, c2 := math.Sincos(angle(t, p.Period2, p.Offset2))

	x1, y1 := p.Radius1*c1, p.Radius1*s1
	x2, y2 := p.Radius2*c2, p.Radius2*s2

	switch p.Centering {
	case CenterP2:
		return geonode.Vec3{X: x1 - x2, Y: y1 - y2}
	case CenterOrigin:
		return geonode.Vec3{X: x1 + x2, Y: y1 + y2}
	default:
		return geonode.Vec3{X: x2 - x1, Y: y2 - y1}
	}
}

// SampleTime returns the time of sample i out of p.Resolution.
func SampleTime(p Params, i int) float64 {
	return p.Start + p.Time*float64(i)/float64(p.Resolution)
}

// Generate samples p.Resolution vertices across the time window and joins
// them into a path. The path is open unless p.Closed is set.
//
// Generate does not clamp its inputs; a Resolution below 1 returns
// [geonode.ErrResolution].
func Generate(p Params, opts ...Option) (geonode.Mesh, error) {
	o := applyOptions(opts)
	return generate(p, o.outputs)
}

func generate(p Params, out geonode.Outputs) (geonode.Mesh, error) {
	if p.Resolution < 1 {
		return geonode.Mesh{}, fmt.Errorf("cycloid: resolution %d: %w", p.Resolution, geonode.ErrResolution)
	}

	var m geonode.Mesh
	if out.Has(geonode.OutputVerts) {
		m.Verts = make([]geonode.Vec3, p.Resolution)
		for i := range m.Verts {
			m.Verts[i] = PointAt(p, SampleTime(p, i))
		}
	}
	if out.Has(geonode.OutputEdges) {
		m.Edges = geonode.PathEdges(p.Resolution, p.Closed)
	}
	return m, nil
}

// GenerateAll broadcasts the vectorized inputs and generates one mesh per
// row. It either succeeds for every row or returns no meshes.
func GenerateAll(in Inputs, opts ...Option) ([]geonode.Mesh, error) {
	o := applyOptions(opts)

	rows, err := geonode.Broadcast(o.broadcast,
		geonode.NamedLen{Name: "Radius1", Len: len(in.Radius1)},
		geonode.NamedLen{Name: "Radius2", Len: len(in.Radius2)},
		geonode.NamedLen{Name: "Period1", Len: len(in.Period1)},
		geonode.NamedLen{Name: "Period2", Len: len(in.Period2)},
		geonode.NamedLen{Name: "Offset1", Len: len(in.Offset1)},
		geonode.NamedLen{Name: "Offset2", Len: len(in.Offset2)},
		geonode.NamedLen{Name: "Time", Len: len(in.Time)},
		geonode.NamedLen{Name: "Resolution", Len: len(in.Resolution)},
	)
	if err != nil {
		return nil, fmt.Errorf("cycloid: %w", err)
	}

	meshes := make([]geonode.Mesh, rows)
	for row := range rows {
		m, err := generate(in.Row(row), o.outputs)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		meshes[row] = m
	}

	geonode.Logger().Debug("cycloid: generated",
		"rows", rows,
		"centering", in.Centering.String(),
		"closed", in.Closed)
	return meshes, nil
}

// Row returns the parameters of one broadcast row.
func (in Inputs) Row(row int) Params {
	return Params{
		Radius1:    geonode.Pick(in.Radius1, row),
		Radius2:    geonode.Pick(in.Radius2, row),
		Period1:    geonode.Pick(in.Period1, row),
		Period2:    geonode.Pick(in.Period2, row),
		Offset1:    geonode.Pick(in.Offset1, row),
		Offset2:    geonode.Pick(in.Offset2, row),
		Time:       geonode.Pick(in.Time, row),
		Resolution: geonode.Pick(in.Resolution, row),
		Start:      in.Start,
		Centering:  in.Centering,
		Closed:     in.Closed,
	}
}

// maxDenominator bounds the search for a rational period ratio.
const maxDenominator = 10000

// Period returns the time after which the traced path repeats: the least
// common multiple of the two periods. It reports false when both bodies
// are still or when the periods are not rationally related within
// maxDenominator.
func Period(p Params) (float64, bool) {
	t1, t2 := p.Period1, p.Period2
	switch {
	case t1 <= 0 && t2 <= 0:
		return 0, false
	case t1 <= 0:
		return t2, true
	case t2 <= 0:
		return t1, true
	}

	// t1/t2 = a/b in lowest terms gives lcm = t1*b = t2*a.
	ratio := t1 / t2
	for b := 1; b <= maxDenominator; b++ {
		a := math.Round(ratio * float64(b))
		if a >= 1 && math.Abs(ratio*float64(b)-a) < 1e-9*float64(b) {
			return t1 * float64(b), true
		}
	}
	return 0, false
}
