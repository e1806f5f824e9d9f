package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trapmap/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the arrangement, in world units, so that unbounded
// trapezoids are obvious.
const drawPadding = 2

type worldBounds struct {
	minX, minY, maxX, maxY float64
}

func (d *Decomposition) bounds() worldBounds {
	b := worldBounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for v := range d.arrangement.Vertices() {
		b.minX = math.Min(b.minX, v.Point.X)
		b.minY = math.Min(b.minY, v.Point.Y)
		b.maxX = math.Max(b.maxX, v.Point.X)
		b.maxY = math.Max(b.maxY, v.Point.Y)
	}
	if math.IsInf(b.minX, 1) { // Nothing inserted
		b = worldBounds{0, 0, 0, 0}
	}
	b.minX -= drawPadding
	b.minY -= drawPadding
	b.maxX += drawPadding
	b.maxY += drawPadding
	return b
}

// Render the decomposition to an image. Inside trapezoids are blue, outside
// ones yellow, and each is labeled with its readable name.
func (d *Decomposition) Render(scale float64) *gg.Context {
	b := d.bounds()
	width := int(math.Ceil(scale * (b.maxX - b.minX)))
	height := int(math.Ceil(scale * (b.maxY - b.minY)))
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so that y points up, then map the world bounds onto the image
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)

	for t := range d.Trapezoids() {
		drawTrapezoid(c, t, b, false)
	}
	c.SetLineWidth(2)
	for t := range d.Trapezoids() {
		drawTrapezoid(c, t, b, true)
	}

	c.SetRGB(1, 0, 0)
	c.SetLineWidth(3)
	for arc := range d.arrangement.Arcs() {
		c.MoveTo(arc.Left.Point.X, arc.Left.Point.Y)
		c.LineTo(arc.Right.Point.X, arc.Right.Point.Y)
		c.Stroke()
	}
	return c
}

func (d *Decomposition) SavePNG(path string, scale float64) error {
	if err := d.Render(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving decomposition to %s", path)
	}
	return nil
}

// Save the image and print it to a terminal that understands inline images
// (iTerm). Handy while debugging.
func (d *Decomposition) CatPNG(path string, scale float64, w io.Writer) error {
	if err := d.SavePNG(path, scale); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing decomposition")
}

func drawTrapezoid(c *gg.Context, t *Trapezoid, b worldBounds, stroke bool) {
	leftX, rightX := b.minX, b.maxX
	if t.left != nil {
		leftX = t.left.Point.X
	}
	if t.right != nil {
		rightX = t.right.Point.X
	}
	if leftX >= rightX {
		// Zero width in the real plane. It only exists because of the shear.
		return
	}
	yAt := func(he *Halfedge, x, fallback float64) float64 {
		if he == nil {
			return fallback
		}
		return he.arc.YAt(x)
	}
	c.MoveTo(leftX, yAt(t.bottom, leftX, b.minY))
	c.LineTo(rightX, yAt(t.bottom, rightX, b.minY))
	c.LineTo(rightX, yAt(t.top, rightX, b.maxY))
	c.LineTo(leftX, yAt(t.top, leftX, b.maxY))
	c.ClosePath()
	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
		return
	}
	if t.IsInside() {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	} else {
		c.SetRGBA(1, 1, 0, 0.5)
	}
	c.Fill()

	// Text has to be drawn without the flip, so find the center in image
	// coordinates first
	centerX := (leftX + rightX) / 2
	centerY := (yAt(t.bottom, centerX, b.minY) + yAt(t.top, centerX, b.maxY)) / 2
	centerX, centerY = c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(dbg.Name(t), centerX, centerY, 0.5, 0.5)
	c.Pop()
}
