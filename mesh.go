package geonode

import "math"

// Edge connects two vertices by index.
type Edge [2]int

// Mesh is the output bundle of a node: vertices plus optional edge and
// polygon topology. Lists that were not requested are nil.
type Mesh struct {
	Verts []Vec3
	Edges []Edge
	Polys [][]int
}

// Outputs is a set of requested output lists.
type Outputs uint8

const (
	OutputVerts Outputs = 1 << iota
	OutputEdges
	OutputPolys

	// AllOutputs requests every list a node can produce.
	AllOutputs = OutputVerts | OutputEdges | OutputPolys
)

// Has reports whether every output in o is requested.
func (s Outputs) Has(o Outputs) bool {
	return s&o == o
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
// An empty mesh returns zero vectors.
func (m Mesh) Bounds() (lo, hi Vec3) {
	if len(m.Verts) == 0 {
		return Vec3{}, Vec3{}
	}
	lo = Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.Verts {
		lo = Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Segments calls fn with the endpoints of every edge whose indices are in
// range. It stops early if fn returns false.
func (m Mesh) Segments(fn func(a, b Vec3) bool) {
	n := len(m.Verts)
	for _, e := range m.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			continue
		}
		if !fn(m.Verts[e[0]], m.Verts[e[1]]) {
			return
		}
	}
}
