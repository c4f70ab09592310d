package project

import (
	"fmt"
	"slices"

	"github.com/gogpu/geonode"
)

// Result is the projection of one mesh. Edges and Polys are copied from the
// input unchanged; projection preserves topology.
type Result struct {
	Verts []geonode.Point
	Edges []geonode.Edge
	Polys [][]int

	// Degenerate counts vertices resolved by the fallback policy.
	Degenerate int
}

// Mesh returns the result as a planar mesh with Z = 0.
func (r Result) Mesh() geonode.Mesh {
	m := geonode.Mesh{Edges: r.Edges, Polys: r.Polys}
	if r.Verts != nil {
		m.Verts = make([]geonode.Vec3, len(r.Verts))
		for i, p := range r.Verts {
			m.Verts[i] = p.Vec3()
		}
	}
	return m
}

// ProjectMesh projects the vertices of in and carries its topology over.
// WithLimit applies when s.Limit is not set; WithBroadcast has no effect on
// a single mesh.
func ProjectMesh(in geonode.Mesh, s Settings, opts ...Option) Result {
	o := applyOptions(opts)
	if s.Limit <= 0 {
		s.Limit = o.limit
	}
	r := projectMesh(in, s, o.outputs)
	if r.Degenerate > 0 {
		geonode.Logger().Warn("project: degenerate vertices clamped",
			"mode", s.Mode.String(),
			"count", r.Degenerate,
			"verts", len(in.Verts))
	}
	return r
}

func projectMesh(in geonode.Mesh, s Settings, out geonode.Outputs) Result {
	var r Result
	if out.Has(geonode.OutputVerts) {
		r.Verts, r.Degenerate = Project(in.Verts, s)
	}
	if out.Has(geonode.OutputEdges) {
		r.Edges = slices.Clone(in.Edges)
	}
	if out.Has(geonode.OutputPolys) && in.Polys != nil {
		r.Polys = make([][]int, len(in.Polys))
		for i, p := range in.Polys {
			r.Polys[i] = slices.Clone(p)
		}
	}
	return r
}

// ProjectAll broadcasts meshes, distances and screens against each other
// and projects one mesh per row. An empty screens list uses the identity
// screen. It either succeeds for every row or returns no results.
func ProjectAll(meshes []geonode.Mesh, distances []float64, screens []geonode.Matrix4, mode Mode, opts ...Option) ([]Result, error) {
	o := applyOptions(opts)
	if len(screens) == 0 {
		screens = []geonode.Matrix4{geonode.Identity4()}
	}

	rows, err := geonode.Broadcast(o.broadcast,
		geonode.NamedLen{Name: "Verts", Len: len(meshes)},
		geonode.NamedLen{Name: "Distance", Len: len(distances)},
		geonode.NamedLen{Name: "Matrix", Len: len(screens)},
	)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	results := make([]Result, rows)
	degenerate := 0
	for row := range rows {
		s := Settings{
			Mode:     mode,
			Distance: geonode.Pick(distances, row),
			Screen:   geonode.Pick(screens, row),
			Limit:    o.limit,
		}
		results[row] = projectMesh(geonode.Pick(meshes, row), s, o.outputs)
		degenerate += results[row].Degenerate
	}

	log := geonode.Logger()
	log.Debug("project: projected", "rows", rows, "mode", mode.String())
	if degenerate > 0 {
		log.Warn("project: degenerate vertices clamped", "mode", mode.String(), "count", degenerate)
	}
	return results, nil
}
