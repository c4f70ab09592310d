package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/gogpu/geonode"
)

func pathMesh(n int, closed bool) geonode.Mesh {
	m := geonode.Mesh{Edges: geonode.PathEdges(n, closed)}
	for i := range n {
		m.Verts = append(m.Verts, geonode.V3(float64(i), float64(i*i), 0))
	}
	return m
}

func quadMesh() geonode.Mesh {
	return geonode.Mesh{
		Verts: []geonode.Vec3{
			geonode.V3(0, 0, 0), geonode.V3(1, 0, 0), geonode.V3(1, 1, 0), geonode.V3(0, 1, 0),
		},
		Edges: []geonode.Edge{{0, 2}, {1, 3}},
		Polys: [][]int{{0, 1, 2, 3}},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	meshes := []geonode.Mesh{pathMesh(4, false), quadMesh()}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meshes); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}

	want := []geonode.Mesh{pathMesh(4, false), quadMesh()}
	want[0].Polys = [][]int{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []geonode.Mesh{{Verts: []geonode.Vec3{geonode.V3(1, 2, 3)}}}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"verts"`) {
		t.Errorf("missing verts key: %s", out)
	}
	if strings.Contains(out, `"edges"`) || strings.Contains(out, `"polys"`) {
		t.Errorf("unrequested lists were written: %s", out)
	}
}

func TestReadJSONMismatch(t *testing.T) {
	in := `{"verts": [[[0,0,0]]], "edges": [[], []]}`
	if _, err := ReadJSON(strings.NewReader(in)); !errors.Is(err, geonode.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("ReadJSON accepted truncated input")
	}
}

func TestGeoJSON(t *testing.T) {
	fc := GeoJSON([]geonode.Mesh{pathMesh(4, false), pathMesh(3, true), quadMesh()})

	if len(fc.Features) != 4 {
		t.Fatalf("got %d features, want 4", len(fc.Features))
	}

	open, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok || len(open) != 4 {
		t.Fatalf("open path geometry = %#v", fc.Features[0].Geometry)
	}
	if open[3] != (orb.Point{3, 9}) {
		t.Errorf("last point = %v, want [3 9]", open[3])
	}

	closed, ok := fc.Features[1].Geometry.(orb.LineString)
	if !ok || len(closed) != 4 || closed[0] != closed[3] {
		t.Errorf("closed path geometry = %#v", fc.Features[1].Geometry)
	}

	if _, ok := fc.Features[2].Geometry.(orb.MultiLineString); !ok {
		t.Errorf("non-sequential edges geometry = %T, want MultiLineString", fc.Features[2].Geometry)
	}
	poly, ok := fc.Features[3].Geometry.(orb.Polygon)
	if !ok || len(poly[0]) != 5 {
		t.Errorf("polygon geometry = %#v", fc.Features[3].Geometry)
	}
	if fc.Features[3].Properties["mesh"] != 2 || fc.Features[3].Properties["kind"] != "poly" {
		t.Errorf("polygon properties = %v", fc.Features[3].Properties)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"LineString"`)) {
		t.Errorf("marshalled collection lacks a LineString: %s", data)
	}
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dxf")
	if err := WriteDXF(path, []geonode.Mesh{pathMesh(5, false), quadMesh()}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, layer := range []string{"mesh-0", "mesh-1"} {
		if !strings.Contains(text, layer) {
			t.Errorf("dxf lacks layer %s", layer)
		}
	}
	if !strings.Contains(text, "LINE") {
		t.Error("dxf has no LINE entities")
	}
}

func TestRenderPNG(t *testing.T) {
	opt := DefaultPreviewOptions()
	opt.Width, opt.Height = 64, 48
	opt.Margin = 4
	opt.Background = color.White
	opt.Stroke = color.Black

	var buf bytes.Buffer
	if err := RenderPNG(&buf, []geonode.Mesh{pathMesh(6, true)}, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if inked(img) == 0 {
		t.Error("preview has no stroked pixels")
	}
}

func TestRenderPNGVertsAndCaption(t *testing.T) {
	opt := DefaultPreviewOptions()
	opt.Width, opt.Height = 96, 96
	opt.Caption = "4 vertices"

	verts := geonode.Mesh{Verts: quadMesh().Verts}
	var buf bytes.Buffer
	if err := RenderPNG(&buf, []geonode.Mesh{verts}, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if inked(img) == 0 {
		t.Error("vertex-only preview is blank")
	}
}

func TestRenderPNGRejectsEmptyImage(t *testing.T) {
	opt := DefaultPreviewOptions()
	opt.Width = 0
	if err := RenderPNG(&bytes.Buffer{}, nil, opt); err == nil {
		t.Error("RenderPNG accepted a zero-width image")
	}
}

func TestCaption(t *testing.T) {
	got := Caption([]geonode.Mesh{pathMesh(1200, false)})
	if want := "1 meshes, 1,200 vertices, 1,199 edges"; got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

// inked counts pixels that differ from white.
func inked(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				n++
			}
		}
	}
	return n
}
