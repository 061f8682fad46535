// Package testsupport holds fixtures shared by package tests: PNG images in
// every color type the migration handles, and small blog trees on disk.
package testsupport

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Size is the edge length of generated fixture images.
const Size = 8

// Fixture image constructors. Each returns a Size x Size image whose left
// half differs from its right half so that composited output can be checked.

// OpaqueRGB is solid red on the left and solid blue on the right.
func OpaqueRGB() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	fill(img, func(x, y int) color.Color {
		if x < Size/2 {
			return color.RGBA{R: 255, A: 255}
		}
		return color.RGBA{B: 255, A: 255}
	})
	return img
}

// TransparentRGBA is fully transparent on the left and opaque green on the right.
func TransparentRGBA() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	fill(img, func(x, y int) color.Color {
		if x < Size/2 {
			return color.NRGBA{R: 0, G: 0, B: 0, A: 0}
		}
		return color.NRGBA{G: 255, A: 255}
	})
	return img
}

// PalettedWithAlpha uses a two-entry palette: transparent black and opaque blue.
func PalettedWithAlpha() image.Image {
	pal := color.Palette{color.NRGBA{A: 0}, color.NRGBA{B: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, Size, Size), pal)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x >= Size/2 {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// Gray is mid grey on the left and white on the right.
func Gray() image.Image {
	img := image.NewGray(image.Rect(0, 0, Size, Size))
	fill(img, func(x, y int) color.Color {
		if x < Size/2 {
			return color.Gray{Y: 128}
		}
		return color.Gray{Y: 255}
	})
	return img
}

// Gray16 is a 16-bit greyscale variant of [Gray].
func Gray16() image.Image {
	img := image.NewGray16(image.Rect(0, 0, Size, Size))
	fill(img, func(x, y int) color.Color {
		if x < Size/2 {
			return color.Gray16{Y: 0x8080}
		}
		return color.Gray16{Y: 0xffff}
	})
	return img
}

// WritePNG encodes img with the standard encoder and writes it to path,
// creating parent directories.
func WritePNG(t testing.TB, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	WriteBytes(t, path, buf.Bytes())
}

// WriteGrayAlphaPNG writes a Size x Size 8-bit grey+alpha PNG (color type 4).
// The standard encoder never emits this color type, so the file is
// assembled chunk by chunk. The left half is transparent, the right half is
// opaque black.
func WriteGrayAlphaPNG(t testing.TB, path string) {
	t.Helper()

	var raw bytes.Buffer
	for y := 0; y < Size; y++ {
		raw.WriteByte(0) // filter: none
		for x := 0; x < Size; x++ {
			if x < Size/2 {
				raw.Write([]byte{0, 0})
			} else {
				raw.Write([]byte{0, 255})
			}
		}
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("compress: %v", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], Size)
	binary.BigEndian.PutUint32(ihdr[4:8], Size)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 4 // grey + alpha

	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)
	WriteBytes(t, path, out.Bytes())
}

// WriteBytes writes data to path, creating parent directories.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()
	WriteBytes(t, path, []byte(content))
}

func writeChunk(w *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	w.Write(n[:])
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	w.WriteString(typ)
	w.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	w.Write(n[:])
}

type settable interface {
	image.Image
	Set(x, y int, c color.Color)
}

func fill(img settable, at func(x, y int) color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, at(x, y))
		}
	}
}
