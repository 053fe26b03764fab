// Package raster implements a drawing surface over an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

type point struct {
	x, y float64
}

type segment struct {
	from, to point
}

// Canvas is a frame.Surface backed by an *image.RGBA
type Canvas struct {
	img       *image.RGBA
	antialias bool
	raster    *vector.Rasterizer

	segments []segment
	pen      point
	start    point
	hasPen   bool
}

// NewCanvas allocates a width x height canvas. With antialias set, strokes
// are filled as one pixel wide quads through an x/image vector rasterizer.
func NewCanvas(width, height int, antialias bool) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		antialias: antialias,
	}
	if antialias {
		c.raster = vector.NewRasterizer(width, height)
	}
	return c
}

// Image returns the live image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Snapshot returns a copy of the current image
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

// Clear fills the whole image with col
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect fills the rectangle, snapped outward to whole pixels
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(c.img, r.Intersect(c.img.Rect), image.NewUniform(col), image.Point{}, draw.Over)
}

// BeginPath discards the current path
func (c *Canvas) BeginPath() {
	c.segments = c.segments[:0]
	c.hasPen = false
}

// MoveTo starts a new subpath at (x, y)
func (c *Canvas) MoveTo(x, y float64) {
	c.pen = point{x, y}
	c.start = c.pen
	c.hasPen = true
}

// LineTo adds a segment from the pen. Without a pen it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	next := point{x, y}
	if !c.hasPen {
		c.MoveTo(x, y)
		return
	}
	c.segments = append(c.segments, segment{c.pen, next})
	c.pen = next
}

// ClosePath joins the pen back to the start of the current subpath
func (c *Canvas) ClosePath() {
	if !c.hasPen || c.pen == c.start {
		return
	}
	c.segments = append(c.segments, segment{c.pen, c.start})
	c.pen = c.start
}

// Stroke draws every segment of the current path
func (c *Canvas) Stroke(col color.Color) {
	if c.antialias {
		c.strokeAntialiased(col)
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	for _, s := range c.segments {
		DrawLine(c.img, s.from.x, s.from.y, s.to.x, s.to.y, rgba)
	}
}

func (c *Canvas) strokeAntialiased(col color.Color) {
	b := c.img.Rect
	c.raster.Reset(b.Dx(), b.Dy())
	c.raster.DrawOp = draw.Over
	// one pixel of slack keeps the quad ends off the image border
	clip := b.Inset(-1)
	for _, s := range c.segments {
		x1, y1, x2, y2, ok := clipLine(s.from.x, s.from.y, s.to.x, s.to.y, clip)
		if !ok {
			continue
		}
		dx, dy := x2-x1, y2-y1
		length := math.Hypot(dx, dy)
		if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			continue
		}
		// half pixel offset along the normal
		nx, ny := -dy/length*0.5, dx/length*0.5
		c.raster.MoveTo(float32(x1+nx), float32(y1+ny))
		c.raster.LineTo(float32(x2+nx), float32(y2+ny))
		c.raster.LineTo(float32(x2-nx), float32(y2-ny))
		c.raster.LineTo(float32(x1-nx), float32(y1-ny))
		c.raster.ClosePath()
	}
	c.raster.Draw(c.img, b, image.NewUniform(col), image.Point{})
}
