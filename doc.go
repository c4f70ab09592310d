// Package geonode provides stateless geometry nodes for parametric modeling
// pipelines.
//
// # Overview
//
// geonode is a Pure Go library of small, closed-form geometry generators and
// transforms. Each node is a pure function from sanitized parameters to
// vertex, edge and polygon lists that a host geometry pipeline can consume.
// There is no graph engine and no shared mutable state: identical inputs
// always produce identical outputs.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/geonode/cycloid"
//		"github.com/gogpu/geonode/project"
//	)
//
//	// Trace an orbit pair with the node defaults
//	mesh, err := cycloid.Generate(cycloid.DefaultParams())
//	if err != nil {
//		return err
//	}
//
//	// Flatten it with a perspective projection
//	pts, _ := project.Project(mesh.Verts, project.DefaultSettings())
//
// # Vectorized Inputs
//
// Node parameters may be given as lists. Lists are broadcast row by row with
// a [BroadcastPolicy]: [BroadcastStrict] accepts lists of length 1 or N and
// rejects anything else with a [*ShapeError], [BroadcastRepeatLast] repeats
// the last value of shorter lists. A computation either succeeds for every
// row or fails without partial results.
//
// # Requested Outputs
//
// Callers pass an [Outputs] set naming the lists they need. Unrequested
// lists are not computed and are left nil.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Point, Vec3, Matrix4, Mesh, Outputs, Broadcast
//   - Nodes: cycloid (orbit path generator), project (3D to 2D projector)
//   - Exporters: export (JSON, GeoJSON, DXF, PNG preview)
//   - Command: cmd/geonode
//
// # Logging
//
// geonode is silent by default. Call [SetLogger] to receive diagnostics.
package geonode
