package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pagedots/dot"
	"github.com/lixenwraith/pagedots/pagination"
	"golang.org/x/image/vector"
)

// circleK is the cubic Bézier control distance for a quarter circle of radius 1
const circleK = 0.5522847

// RasterOptions configures image export
type RasterOptions struct {
	Diameter   int         // Pixel diameter of a full-scale dot
	Gap        int         // Pixels between dot boxes
	Padding    int         // Pixels around the row
	Background color.Color // nil uses the container background, else transparent
	Fallback   color.Color // Used for dots without a color
}

// DefaultRasterOptions returns 16px dots with 8px gaps on a transparent image
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Diameter: 16,
		Gap:      8,
		Padding:  8,
		Fallback: color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	}
}

// Rasterize draws c as anti-aliased circles
// Scale sets each radius, Opacity sets alpha; invisible containers give an empty image
func Rasterize(c pagination.Container, opts RasterOptions) *image.RGBA {
	if opts.Diameter <= 0 {
		opts.Diameter = DefaultRasterOptions().Diameter
	}
	if opts.Fallback == nil {
		opts.Fallback = DefaultRasterOptions().Fallback
	}
	if !c.Visible || len(c.Dots) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	n := len(c.Dots)
	length := n*opts.Diameter + (n-1)*opts.Gap + 2*opts.Padding
	cross := opts.Diameter + 2*opts.Padding

	w, h := length, cross
	if c.Flow == pagination.FlowColumn {
		w, h = cross, length
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg := c.Style.Background; opts.Background == nil && bg != tcell.ColorDefault {
		r, g, b := bg.RGB()
		opts.Background = color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
	}
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	z := vector.NewRasterizer(w, h)
	for slot, d := range flowOrder(c) {
		offset := opts.Padding + slot*(opts.Diameter+opts.Gap) + opts.Diameter/2
		center := opts.Padding + opts.Diameter/2

		cx, cy := float32(offset), float32(center)
		if c.Flow == pagination.FlowColumn {
			cx, cy = float32(center), float32(offset)
		}

		radius := float32(opts.Diameter) / 2 * float32(clampUnit(d.Scale))
		if radius < 1 {
			radius = 1
		}

		z.Reset(w, h)
		circle(z, cx, cy, radius)
		z.Draw(img, img.Bounds(), image.NewUniform(dotColor(d, opts.Fallback)), image.Point{})
	}
	return img
}

// circle appends a closed circle path to z
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * circleK
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// dotColor converts the dot's base color to NRGBA with opacity as alpha
func dotColor(d pagination.Dot, fallback color.Color) color.NRGBA {
	alpha := uint8(clampUnit(d.Opacity)*255 + 0.5)

	base := dot.Base(d)
	if base == tcell.ColorDefault {
		c := color.NRGBAModel.Convert(fallback).(color.NRGBA)
		c.A = uint8(uint16(c.A) * uint16(alpha) / 255)
		return c
	}
	r, g, b := base.RGB()
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: alpha}
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
