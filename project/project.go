package project

import (
	"math"

	"github.com/gogpu/geonode"
)

// DepthEpsilon is the smallest distance from the eye, sphere center or
// cylinder axis that is projected without the degenerate fallback.
const DepthEpsilon = 1e-9

// DefaultLimit bounds output coordinates when Settings.Limit is not positive.
const DefaultLimit = 1e6

// Settings configures a projection.
type Settings struct {
	Mode Mode

	// Distance is the eye distance for Planar and the surface radius for
	// Spherical and Cylindrical. Zero collapses every point to the origin.
	Distance float64

	// Screen locates the projection screen. Its axes are normalized, so
	// scale in Screen has no effect. The zero matrix stands for the
	// identity screen. A singular screen, whose axes do not span space,
	// still projects but counts every vertex as degenerate.
	Screen geonode.Matrix4

	// Limit bounds the magnitude of every output coordinate.
	Limit float64
}

// DefaultSettings returns the node defaults: planar projection at distance 2
// onto the XY plane.
func DefaultSettings() Settings {
	return Settings{
		Mode:     Planar,
		Distance: 2,
		Screen:   geonode.Identity4(),
		Limit:    DefaultLimit,
	}
}

// frame is a projection screen reduced to an origin and unit axes.
type frame struct {
	origin geonode.Vec3
	basis  geonode.Matrix4 // unit axes as columns, translated to origin
	dual   geonode.Matrix4 // unit axes as rows

	// singular is set when the axes do not span space. Every vertex
	// projected through a singular frame counts as degenerate.
	singular bool
}

func newFrame(m geonode.Matrix4) frame {
	ex := m.Axis(0).Normalize()
	ey := m.Axis(1).Normalize()
	ez := m.Axis(2).Normalize()
	if ex == (geonode.Vec3{}) && ey == (geonode.Vec3{}) && ez == (geonode.Vec3{}) {
		id := geonode.Identity4()
		ex, ey, ez = id.Axis(0), id.Axis(1), id.Axis(2)
	}

	origin := m.Origin()
	finite := origin.IsFinite()
	if !finite {
		origin = geonode.Vec3{}
	}
	vol := ex.Cross(ey).Dot(ez)

	return frame{
		origin: origin,
		basis: geonode.Matrix4{
			{ex.X, ey.X, ez.X, origin.X},
			{ex.Y, ey.Y, ez.Y, origin.Y},
			{ex.Z, ey.Z, ez.Z, origin.Z},
			{0, 0, 0, 1},
		},
		dual: geonode.Matrix4{
			{ex.X, ex.Y, ex.Z, 0},
			{ey.X, ey.Y, ey.Z, 0},
			{ez.X, ez.Y, ez.Z, 0},
			{0, 0, 0, 1},
		},
		singular: !finite || math.Abs(vol) < DepthEpsilon || math.IsNaN(vol),
	}
}

// local expresses v in screen coordinates.
func (f frame) local(v geonode.Vec3) geonode.Vec3 {
	return f.dual.TransformVector(v.Sub(f.origin))
}

// world maps screen coordinates back to world space.
func (f frame) world(l geonode.Vec3) geonode.Vec3 {
	return f.basis.TransformPoint(l)
}

// projected is one vertex on the projection surface.
type projected struct {
	uv         geonode.Point // unrolled 2D coordinates
	surface    geonode.Vec3  // point on the surface, screen coordinates
	degenerate bool
}

func projectPlanar(l geonode.Vec3, d float64) projected {
	if math.IsInf(d, 1) {
		return projected{uv: l.XY(), surface: geonode.Vec3{X: l.X, Y: l.Y}}
	}
	var out projected
	denom := d + l.Z
	if denom < DepthEpsilon || math.IsNaN(denom) {
		denom = DepthEpsilon
		out.degenerate = true
	}
	s := d / denom
	out.uv = geonode.Pt(s*l.X, s*l.Y)
	out.surface = geonode.Vec3{X: out.uv.X, Y: out.uv.Y}
	return out
}

func projectSpherical(l geonode.Vec3, d float64) projected {
	r := l.Length()
	if r < DepthEpsilon || math.IsNaN(r) {
		return projected{degenerate: true}
	}
	lon := math.Atan2(l.Y, l.X)
	lat := math.Asin(math.Max(-1, math.Min(1, l.Z/r)))
	return projected{
		uv:      geonode.Pt(d*lon, d*lat),
		surface: l.Mul(d / r),
	}
}

func projectCylindrical(l geonode.Vec3, d, limit float64) projected {
	rho := math.Hypot(l.X, l.Y)
	if rho < DepthEpsilon || math.IsNaN(rho) {
		var h float64
		switch {
		case d == 0:
		case l.Z > 0:
			h = limit
		case l.Z < 0:
			h = -limit
		}
		return projected{
			uv:         geonode.Pt(0, h),
			surface:    geonode.Vec3{Z: h},
			degenerate: true,
		}
	}
	return projected{
		uv:      geonode.Pt(d*math.Atan2(l.Y, l.X), d*l.Z/rho),
		surface: l.Mul(d / rho),
	}
}

func (s Settings) project(v geonode.Vec3, f frame, limit float64) projected {
	l := f.local(v)
	var p projected
	switch s.Mode {
	case Spherical:
		p = projectSpherical(l, s.Distance)
	case Cylindrical:
		p = projectCylindrical(l, s.Distance, limit)
	default:
		p = projectPlanar(l, s.Distance)
	}
	if f.singular {
		p.degenerate = true
	}
	p.uv = geonode.Pt(clamp(p.uv.X, limit), clamp(p.uv.Y, limit))
	p.surface = geonode.V3(clamp(p.surface.X, limit), clamp(p.surface.Y, limit), clamp(p.surface.Z, limit))
	return p
}

func (s Settings) limit() float64 {
	if s.Limit > 0 && !math.IsInf(s.Limit, 1) {
		return s.Limit
	}
	return DefaultLimit
}

// clamp bounds v to [-limit, limit] and maps NaN to zero.
func clamp(v, limit float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-limit, math.Min(limit, v))
}

// Project returns the 2D projection of every vertex, in input order, and
// the number of vertices resolved by the degenerate fallback.
func Project(verts []geonode.Vec3, s Settings) ([]geonode.Point, int) {
	f := newFrame(s.Screen)
	limit := s.limit()

	out := make([]geonode.Point, len(verts))
	degenerate := 0
	for i, v := range verts {
		p := s.project(v, f, limit)
		out[i] = p.uv
		if p.degenerate {
			degenerate++
		}
	}
	return out, degenerate
}

// Project3D returns, for every vertex, the world-space point where it lands
// on the projection surface: on the screen plane for Planar, on the sphere
// or cylinder otherwise.
func Project3D(verts []geonode.Vec3, s Settings) ([]geonode.Vec3, int) {
	f := newFrame(s.Screen)
	limit := s.limit()

	out := make([]geonode.Vec3, len(verts))
	degenerate := 0
	for i, v := range verts {
		p := s.project(v, f, limit)
		out[i] = f.world(p.surface)
		if p.degenerate {
			degenerate++
		}
	}
	return out, degenerate
}
