package raster

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA walk.
// The segment is clipped to the image first, so the walk never leaves it.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 float64, col color.RGBA) {
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, img.Rect)
	if !ok {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 || math.IsNaN(steps) || math.IsInf(steps, 0) {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := x1
	y := y1
	for i := 0; i <= int(steps); i++ {
		setPixel(img, x, y, col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y float64, col color.RGBA) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))
	if !(image.Point{X: ix, Y: iy}.In(img.Rect)) {
		return
	}
	offset := img.PixOffset(ix, iy)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// clipLine clips the segment to r (Liang-Barsky). ok is false when no part
// of the segment lies inside r.
func clipLine(x1, y1, x2, y2 float64, r image.Rectangle) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	edges := [4][2]float64{
		{-dx, x1 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x1},
		{-dy, y1 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y1},
	}

	t0, t1 := 0.0, 1.0
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			// parallel to this edge
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
