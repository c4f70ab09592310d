// Package export writes node output to files other tools can read.
//
// Supported formats:
//   - JSON: nested verts/edges/polys lists, one entry per mesh ([WriteJSON], [ReadJSON])
//   - GeoJSON: one feature per path or polygon ([GeoJSON])
//   - DXF: LINE entities on one layer per mesh ([WriteDXF])
//   - PNG: a stroked preview of the XY plane ([RenderPNG])
package export
