package internal

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Debug rendering. The real renderer lives outside this module; this is
// enough to look at a polygon and its triangulation from a test or the
// command line.

// Padding around the shape so that markers on the bounding box are visible
const dbgDrawPadding = 20

// Render the polygon and triangles onto a new context. Coordinates are window
// pixels (y down), which is also the image convention, so no flip is needed.
// scale must be positive.
func Render(poly Polygon, triangles TriangleList, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(poly.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0.06, 0.06, 0.06)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Triangles, each in its own hue
	for i, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		r, g, b := hueToRGB(float64(i) / float64(len(triangles)))
		c.SetRGB(r, g, b)
		c.Fill()
	}

	// Outline
	c.SetLineWidth(1 / scale)
	for i := range poly.Points {
		a, b := poly.Edge(i)
		c.DrawLine(a.X, a.Y, b.X, b.Y)
	}
	c.SetRGB(0.9, 0.9, 0.9)
	c.Stroke()

	// Vertex markers
	for _, p := range poly.Points {
		c.DrawRectangle(p.X-3.5/scale, p.Y-3.5/scale, 7/scale, 7/scale)
	}
	c.SetRGB(0.98, 0, 0)
	c.Fill()
	return c
}

func RenderPNG(w io.Writer, poly Polygon, triangles TriangleList, scale float64) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	c := Render(poly, triangles, scale)
	return errors.Wrap(c.EncodePNG(w), "encode png")
}

// Print the render inline in the terminal (iTerm only).
func ShowInTerminal(w io.Writer, poly Polygon, triangles TriangleList, scale float64) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	f, err := os.CreateTemp("", "polyedit-*.png")
	if err != nil {
		return errors.Wrap(err, "create temp png")
	}
	defer os.Remove(f.Name())

	if err := RenderPNG(f, poly, triangles, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close temp png")
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), w), "imgcat")
}

func checkScale(scale float64) error {
	if !(scale > 0) {
		return errors.Errorf("render scale %g must be positive", scale)
	}
	return nil
}

// Full saturation and value HSV to RGB.
func hueToRGB(h float64) (r, g, b float64) {
	i := int(h * 6)
	f := h*6 - float64(i)
	q := 1 - f
	t := f
	switch i % 6 {
	case 0:
		return 1, t, 0
	case 1:
		return q, 1, 0
	case 2:
		return 0, 1, t
	case 3:
		return 0, q, 1
	case 4:
		return t, 0, 1
	default:
		return 1, 0, q
	}
}
