// Package transcode converts a single PNG file into a sibling JPEG.
//
// Sources with an alpha channel or a palette are composited onto an opaque
// background; other non-truecolor sources are converted to 8-bit RGB. The
// JPEG is encoded fully in memory and written in one call, so a failed
// encode never leaves a truncated file behind.
package transcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/backmassage/pngjpg/internal/naming"
	"github.com/backmassage/pngjpg/internal/probe"
)

// DefaultQuality matches the --quality default.
const DefaultQuality = 85

// White is the default flatten background.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Options controls encoding.
type Options struct {
	Quality    int        // 1-100.
	Background color.RGBA // Must be opaque.
}

// Result describes one completed conversion.
type Result struct {
	Source      string
	Target      string
	Mode        probe.ColorMode
	Width       int
	Height      int
	InputBytes  int64
	OutputBytes int64
}

// Transcode decodes the PNG at src, normalizes its pixels, and writes a JPEG
// at [naming.JPEGPath](src). An existing file at the target is overwritten.
// The source file is left in place.
func Transcode(src string, opts Options) (Result, error) {
	if opts.Quality < 1 || opts.Quality > 100 {
		return Result{}, fmt.Errorf("transcode %q: quality %d out of range 1-100", src, opts.Quality)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return Result{}, fmt.Errorf("read %q: %w", src, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("decode %q: %w", src, err)
	}

	mode := probe.Classify(img.ColorModel())
	flat := Normalize(img, mode, opts.Background)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return Result{}, fmt.Errorf("encode %q: %w", src, err)
	}

	target := naming.JPEGPath(src)
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %q: %w", target, err)
	}

	b := img.Bounds()
	return Result{
		Source:      src,
		Target:      target,
		Mode:        mode,
		Width:       b.Dx(),
		Height:      b.Dy(),
		InputBytes:  int64(len(data)),
		OutputBytes: int64(buf.Len()),
	}, nil
}

// Normalize returns an opaque 8-bit RGB rendition of img suitable for JPEG.
//
//   - alpha and palette modes: drawn over a canvas filled with bg, using
//     each pixel's alpha as the mask. Palette entries carry their own alpha,
//     so this equals expanding the palette to RGBA first.
//   - other non-truecolor modes: converted pixel-for-pixel.
//   - opaque 8-bit RGB: returned as is.
func Normalize(img image.Image, mode probe.ColorMode, bg color.RGBA) image.Image {
	b := img.Bounds()
	switch {
	case mode.NeedsFlatten():
		canvas := image.NewRGBA(b)
		draw.Draw(canvas, b, &image.Uniform{C: bg}, image.Point{}, draw.Src)
		draw.Draw(canvas, b, img, b.Min, draw.Over)
		return canvas
	case mode.IsTrueColor():
		return img
	default:
		canvas := image.NewRGBA(b)
		draw.Draw(canvas, b, img, b.Min, draw.Src)
		return canvas
	}
}
