// Package record renders the cube headlessly and encodes the frames.
package record

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"golang.org/x/sync/errgroup"

	"wirecube/internal/frame"
	"wirecube/internal/raster"
)

const codespace = "record"

var (
	ErrUnknownFormat = errorsmod.Register(codespace, 2, "unknown output format")
	ErrNoFrames      = errorsmod.Register(codespace, 3, "no frames to record")
)

const (
	FormatGIF = "gif"
	FormatPNG = "png"
)

// paletteSize is the number of blend steps between background and foreground
const paletteSize = 16

type Options struct {
	Frame     frame.Options
	Frames    int
	Delay     int // 1/100 s between GIF frames
	Antialias bool
	Format    string // case insensitive
}

// FormatFromPath derives the output format from a file extension
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Record ticks an updater over a raster canvas Frames times and writes the
// result to w: every frame as an animated GIF, or the last frame as a PNG.
func Record(ctx context.Context, w io.Writer, opts Options) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format != FormatGIF && format != FormatPNG {
		return errorsmod.Wrapf(ErrUnknownFormat, "%q", opts.Format)
	}
	if opts.Frames <= 0 {
		return errorsmod.Wrapf(ErrNoFrames, "frames %d", opts.Frames)
	}

	canvas := raster.NewCanvas(int(opts.Frame.Width), int(opts.Frame.Height), opts.Antialias)
	updater := frame.NewUpdater(canvas, opts.Frame)

	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan *image.RGBA, 4)

	g.Go(func() error {
		defer close(frames)
		sched := &frame.ManualScheduler{}
		if err := updater.Start(sched); err != nil {
			return err
		}
		for i := 0; i < opts.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i > 0 {
				if _, err := sched.Step(); err != nil {
					return err
				}
			}
			select {
			case frames <- canvas.Snapshot():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		updater.Stop()
		return nil
	})

	g.Go(func() error {
		if format == FormatPNG {
			return encodePNG(w, frames)
		}
		return encodeGIF(w, frames, rampPalette(opts.Frame.Background, opts.Frame.Foreground), opts.Delay)
	})

	return g.Wait()
}

func encodePNG(w io.Writer, frames <-chan *image.RGBA) error {
	var last *image.RGBA
	for img := range frames {
		last = img
	}
	if last == nil {
		return nil
	}
	return png.Encode(w, last)
}

func encodeGIF(w io.Writer, frames <-chan *image.RGBA, pal color.Palette, delay int) error {
	anim := &gif.GIF{}
	for img := range frames {
		p := image.NewPaletted(img.Rect, pal)
		draw.Draw(p, p.Rect, img, img.Rect.Min, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	if len(anim.Image) == 0 {
		return nil
	}
	return gif.EncodeAll(w, anim)
}

// rampPalette blends from bg to fg so anti-aliased edges keep their shades
func rampPalette(bg, fg color.Color) color.Palette {
	b := color.RGBAModel.Convert(bg).(color.RGBA)
	f := color.RGBAModel.Convert(fg).(color.RGBA)
	pal := make(color.Palette, paletteSize)
	for i := range pal {
		t := float64(i) / float64(paletteSize-1)
		pal[i] = color.RGBA{
			R: lerp(b.R, f.R, t),
			G: lerp(b.G, f.G, t),
			B: lerp(b.B, f.B, t),
			A: 0xff,
		}
	}
	return pal
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
