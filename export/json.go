package export

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/gogpu/geonode"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the JSON form of a list of meshes. Index k of every list
// belongs to mesh k.
type Document struct {
	Verts [][][3]float64 `json:"verts"`
	Edges [][][2]int     `json:"edges,omitempty"`
	Polys [][][]int      `json:"polys,omitempty"`
}

// NewDocument converts meshes to their JSON form.
func NewDocument(meshes []geonode.Mesh) Document {
	doc := Document{Verts: make([][][3]float64, len(meshes))}
	hasEdges, hasPolys := false, false
	for _, m := range meshes {
		hasEdges = hasEdges || m.Edges != nil
		hasPolys = hasPolys || m.Polys != nil
	}
	if hasEdges {
		doc.Edges = make([][][2]int, len(meshes))
	}
	if hasPolys {
		doc.Polys = make([][][]int, len(meshes))
	}

	for i, m := range meshes {
		verts := make([][3]float64, len(m.Verts))
		for j, v := range m.Verts {
			verts[j] = [3]float64{v.X, v.Y, v.Z}
		}
		doc.Verts[i] = verts
		if hasEdges {
			edges := make([][2]int, len(m.Edges))
			for j, e := range m.Edges {
				edges[j] = e
			}
			doc.Edges[i] = edges
		}
		if hasPolys {
			doc.Polys[i] = m.Polys
			if doc.Polys[i] == nil {
				doc.Polys[i] = [][]int{}
			}
		}
	}
	return doc
}

// Meshes converts the document back to meshes. Edge and polygon lists may
// be shorter than the vertex list; missing entries become nil.
func (d Document) Meshes() ([]geonode.Mesh, error) {
	if len(d.Edges) > len(d.Verts) || len(d.Polys) > len(d.Verts) {
		return nil, fmt.Errorf("export: %d vertex lists, %d edge lists, %d polygon lists: %w",
			len(d.Verts), len(d.Edges), len(d.Polys), geonode.ErrShapeMismatch)
	}
	meshes := make([]geonode.Mesh, len(d.Verts))
	for i, vs := range d.Verts {
		m := geonode.Mesh{Verts: make([]geonode.Vec3, len(vs))}
		for j, v := range vs {
			m.Verts[j] = geonode.V3(v[0], v[1], v[2])
		}
		if i < len(d.Edges) {
			m.Edges = make([]geonode.Edge, len(d.Edges[i]))
			for j, e := range d.Edges[i] {
				m.Edges[j] = e
			}
		}
		if i < len(d.Polys) {
			m.Polys = d.Polys[i]
		}
		meshes[i] = m
	}
	return meshes, nil
}

// WriteJSON encodes meshes as a Document.
func WriteJSON(w io.Writer, meshes []geonode.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(meshes)); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// ReadJSON decodes meshes written by WriteJSON.
func ReadJSON(r io.Reader) ([]geonode.Mesh, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("export: decode json: %w", err)
	}
	return doc.Meshes()
}
