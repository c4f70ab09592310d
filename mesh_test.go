package geonode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathEdges(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		closed bool
		want   []Edge
	}{
		{"empty", 0, false, []Edge{}},
		{"single", 1, true, []Edge{}},
		{"closed 2", 2, true, []Edge{{0, 1}}},
		{"open 4", 4, false, []Edge{{0, 1}, {1, 2}, {2, 3}}},
		{"closed 3", 3, true, []Edge{{0, 1}, {1, 2}, {2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PathEdges(tt.n, tt.closed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PathEdges(%d, %v) (-want +got):\n%s", tt.n, tt.closed, diff)
			}
			if tt.n > 0 && !IsPath(got, tt.n) {
				t.Errorf("IsPath(PathEdges(%d, %v)) = false", tt.n, tt.closed)
			}
		})
	}
}

func TestIsPathRejectsShuffledEdges(t *testing.T) {
	if IsPath([]Edge{{1, 2}, {0, 1}}, 3) {
		t.Error("IsPath accepted out-of-order edges")
	}
	if IsPath([]Edge{{0, 1}}, 4) {
		t.Error("IsPath accepted too few edges")
	}
}

func TestOutputsHas(t *testing.T) {
	s := OutputVerts | OutputEdges
	if !s.Has(OutputVerts) || !s.Has(OutputEdges) {
		t.Error("Has() missed a requested output")
	}
	if s.Has(OutputPolys) || s.Has(AllOutputs) {
		t.Error("Has() reported an unrequested output")
	}
}

func TestMeshBounds(t *testing.T) {
	m := Mesh{Verts: []Vec3{V3(1, -2, 0), V3(-3, 4, 1), V3(0, 0, -1)}}
	lo, hi := m.Bounds()
	if lo != V3(-3, -2, -1) || hi != V3(1, 4, 1) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
	lo, hi = Mesh{}.Bounds()
	if lo != (Vec3{}) || hi != (Vec3{}) {
		t.Errorf("empty Bounds() = %v, %v", lo, hi)
	}
}

func TestMeshSegmentsSkipsInvalidEdges(t *testing.T) {
	m := Mesh{
		Verts: []Vec3{V3(0, 0, 0), V3(1, 0, 0)},
		Edges: []Edge{{0, 1}, {1, 2}, {-1, 0}},
	}
	var n int
	m.Segments(func(a, b Vec3) bool {
		n++
		return true
	})
	if n != 1 {
		t.Errorf("Segments visited %d edges, want 1", n)
	}
}
