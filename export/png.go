package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geonode"
)

// PreviewOptions configures RenderPNG.
type PreviewOptions struct {
	Width, Height int
	Margin        float64 // empty border around the geometry, in pixels
	LineWidth     float64 // stroke width, in pixels
	Background    color.Color
	Stroke        color.Color

	// Caption is drawn in the bottom-left corner. Empty draws no caption.
	Caption  string
	FontSize float64
}

// DefaultPreviewOptions returns a 512x512 preview with dark lines on white.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      512,
		Height:     512,
		Margin:     24,
		LineWidth:  1.5,
		Background: color.White,
		Stroke:     color.RGBA{R: 0x20, G: 0x30, B: 0x60, A: 0xff},
		FontSize:   12,
	}
}

// Caption summarizes meshes for a preview caption, e.g.
// "2 meshes, 1,200 vertices, 1,198 edges".
func Caption(meshes []geonode.Mesh) string {
	verts, edges := 0, 0
	for _, m := range meshes {
		verts += len(m.Verts)
		edges += len(m.Edges)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d meshes, %d vertices, %d edges", len(meshes), verts, edges)
}

// viewport maps the XY bounds of the geometry onto the image, keeping the
// aspect ratio and flipping Y so that +Y points up.
type viewport struct {
	scale        float64
	cx, cy       float64 // geometry center
	halfW, halfH float64
}

func newViewport(meshes []geonode.Mesh, opt PreviewOptions) viewport {
	lo := geonode.Pt(math.Inf(1), math.Inf(1))
	hi := geonode.Pt(math.Inf(-1), math.Inf(-1))
	for _, m := range meshes {
		if len(m.Verts) == 0 {
			continue
		}
		mlo, mhi := m.Bounds()
		lo = geonode.Pt(min(lo.X, mlo.X), min(lo.Y, mlo.Y))
		hi = geonode.Pt(max(hi.X, mhi.X), max(hi.Y, mhi.Y))
	}
	vp := viewport{scale: 1, halfW: float64(opt.Width) / 2, halfH: float64(opt.Height) / 2}
	if math.IsInf(lo.X, 1) {
		return vp
	}

	vp.cx, vp.cy = (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	w, h := hi.X-lo.X, hi.Y-lo.Y
	availW := math.Max(float64(opt.Width)-2*opt.Margin, 1)
	availH := math.Max(float64(opt.Height)-2*opt.Margin, 1)
	switch {
	case w == 0 && h == 0:
	case w == 0:
		vp.scale = availH / h
	case h == 0:
		vp.scale = availW / w
	default:
		vp.scale = math.Min(availW/w, availH/h)
	}
	return vp
}

func (vp viewport) apply(v geonode.Vec3) (float32, float32) {
	x := vp.halfW + (v.X-vp.cx)*vp.scale
	y := vp.halfH - (v.Y-vp.cy)*vp.scale
	return float32(x), float32(y)
}

// RenderPNG strokes the edges of meshes, projected onto the XY plane, and
// encodes the result as PNG. Meshes without edges are drawn as vertex dots.
func RenderPNG(w io.Writer, meshes []geonode.Mesh, opt PreviewOptions) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("export: preview size %dx%d", opt.Width, opt.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	vp := newViewport(meshes, opt)
	r := vector.NewRasterizer(opt.Width, opt.Height)
	half := float32(math.Max(opt.LineWidth, 0.5) / 2)
	for _, m := range meshes {
		if len(m.Edges) == 0 {
			for _, v := range m.Verts {
				x, y := vp.apply(v)
				dot(r, x, y, half*1.5)
			}
			continue
		}
		m.Segments(func(a, b geonode.Vec3) bool {
			ax, ay := vp.apply(a)
			bx, by := vp.apply(b)
			segment(r, ax, ay, bx, by, half)
			return true
		})
	}
	r.Draw(img, img.Bounds(), image.NewUniform(opt.Stroke), image.Point{})

	if opt.Caption != "" {
		if err := drawCaption(img, opt); err != nil {
			return err
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// segment adds a stroked line as a quad of half-width hw.
func segment(r *vector.Rasterizer, ax, ay, bx, by, hw float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		dot(r, ax, ay, hw)
		return
	}
	nx, ny := -dy/length*hw, dx/length*hw
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

// dot adds a square of half-size hs centered on (x, y).
func dot(r *vector.Rasterizer, x, y, hs float32) {
	r.MoveTo(x-hs, y-hs)
	r.LineTo(x+hs, y-hs)
	r.LineTo(x+hs, y+hs)
	r.LineTo(x-hs, y+hs)
	r.ClosePath()
}

func drawCaption(img draw.Image, opt PreviewOptions) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("export: parse caption font: %w", err)
	}
	size := opt.FontSize
	if size <= 0 {
		size = 12
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("export: caption face: %w", err)
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opt.Stroke),
		Face: face,
		Dot:  fixed.P(int(opt.Margin/2)+4, opt.Height-int(opt.Margin/2)-4),
	}
	d.DrawString(opt.Caption)
	return nil
}
