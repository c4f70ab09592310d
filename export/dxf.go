package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/gogpu/geonode"
)

// WriteDXF writes every edge as a LINE entity and every polygon as a closed
// loop of LINE entities to the file at path. Mesh k is drawn on layer
// "mesh-k".
func WriteDXF(path string, meshes []geonode.Mesh) error {
	d := dxf.NewDrawing()
	for i, m := range meshes {
		layer := fmt.Sprintf("mesh-%d", i)
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("export: dxf layer %s: %w", layer, err)
		}

		var lineErr error
		line := func(a, b geonode.Vec3) bool {
			if _, err := d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z); err != nil {
				lineErr = err
				return false
			}
			return true
		}
		m.Segments(line)
		for _, poly := range m.Polys {
			if lineErr != nil {
				break
			}
			polyLoop(m.Verts, poly, line)
		}
		if lineErr != nil {
			return fmt.Errorf("export: dxf %s: %w", layer, lineErr)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export: save dxf: %w", err)
	}
	geonode.Logger().Debug("export: wrote dxf", "path", path, "meshes", len(meshes))
	return nil
}

// polyLoop calls fn for each side of the polygon, skipping invalid indices.
func polyLoop(verts []geonode.Vec3, poly []int, fn func(a, b geonode.Vec3) bool) {
	n := len(poly)
	if n < 2 {
		return
	}
	for k := range n {
		i, j := poly[k], poly[(k+1)%n]
		if i < 0 || i >= len(verts) || j < 0 || j >= len(verts) {
			continue
		}
		if !fn(verts[i], verts[j]) {
			return
		}
	}
}
