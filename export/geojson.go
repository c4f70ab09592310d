package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/geonode"
)

// GeoJSON converts meshes to a feature collection in the XY plane.
//
// Sequential edges become one LineString per mesh; any other edge list
// becomes a MultiLineString of its segments. Every polygon becomes a
// Polygon feature. Features carry the mesh index in the "mesh" property.
func GeoJSON(meshes []geonode.Mesh) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, m := range meshes {
		if g := edgeGeometry(m); g != nil {
			f := geojson.NewFeature(g)
			f.Properties["mesh"] = i
			f.Properties["kind"] = "path"
			f.Properties["verts"] = len(m.Verts)
			fc.Append(f)
		}
		for j, poly := range m.Polys {
			ring := make(orb.Ring, 0, len(poly)+1)
			for _, idx := range poly {
				if idx < 0 || idx >= len(m.Verts) {
					continue
				}
				ring = append(ring, orbPoint(m.Verts[idx]))
			}
			if len(ring) < 3 {
				continue
			}
			ring = append(ring, ring[0])
			f := geojson.NewFeature(orb.Polygon{ring})
			f.Properties["mesh"] = i
			f.Properties["kind"] = "poly"
			f.Properties["poly"] = j
			fc.Append(f)
		}
	}
	return fc
}

func edgeGeometry(m geonode.Mesh) orb.Geometry {
	if len(m.Edges) == 0 {
		return nil
	}
	if geonode.IsPath(m.Edges, len(m.Verts)) {
		ls := make(orb.LineString, 0, len(m.Edges)+1)
		for _, v := range m.Verts {
			ls = append(ls, orbPoint(v))
		}
		if len(m.Edges) == len(m.Verts) {
			ls = append(ls, ls[0])
		}
		return ls
	}

	var mls orb.MultiLineString
	m.Segments(func(a, b geonode.Vec3) bool {
		mls = append(mls, orb.LineString{orbPoint(a), orbPoint(b)})
		return true
	})
	if len(mls) == 0 {
		return nil
	}
	return mls
}

func orbPoint(v geonode.Vec3) orb.Point {
	return orb.Point{v.X, v.Y}
}
