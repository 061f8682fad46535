package probe

import (
	"fmt"
	"image/color"
)

// ColorMode is the pixel layout a PNG decodes to. The PNG color types map
// onto Go color models as follows:
//
//	truecolor 8        -> RGBA model   (ModeRGB)
//	truecolor 16       -> RGBA64 model (ModeRGB16)
//	truecolor+alpha 8  -> NRGBA model  (ModeRGBA, also grey+alpha 8 and tRNS)
//	truecolor+alpha 16 -> NRGBA64      (ModeRGBA16, also grey+alpha 16)
//	greyscale 8/16     -> Gray/Gray16  (ModeGray / ModeGray16)
//	indexed            -> Palette      (ModePaletted)
type ColorMode string

const (
	ModeRGB      ColorMode = "RGB"
	ModeRGB16    ColorMode = "RGB16"
	ModeRGBA     ColorMode = "RGBA"
	ModeRGBA16   ColorMode = "RGBA16"
	ModeGray     ColorMode = "L"
	ModeGray16   ColorMode = "L16"
	ModePaletted ColorMode = "P"
	ModeOther    ColorMode = "other"
)

// HasAlpha reports whether the mode carries a per-pixel alpha channel.
// Palette images may carry alpha in their palette entries; see NeedsFlatten.
func (m ColorMode) HasAlpha() bool {
	return m == ModeRGBA || m == ModeRGBA16
}

// NeedsFlatten reports whether pixels must be composited onto an opaque
// background before JPEG encoding.
func (m ColorMode) NeedsFlatten() bool {
	return m.HasAlpha() || m == ModePaletted
}

// IsTrueColor reports whether the mode is already 8-bit RGB.
func (m ColorMode) IsTrueColor() bool {
	return m == ModeRGB
}

// Info is the header-level description of one PNG file.
type Info struct {
	Path   string
	Width  int
	Height int
	Mode   ColorMode
	Size   int64 // bytes on disk
}

// Resolution returns "WxH", or "unknown" when dimensions are missing.
func (i Info) Resolution() string {
	if i.Width <= 0 || i.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// Classify maps a decoded color model onto a ColorMode.
func Classify(m color.Model) ColorMode {
	switch m {
	case color.RGBAModel:
		return ModeRGB
	case color.RGBA64Model:
		return ModeRGB16
	case color.NRGBAModel:
		return ModeRGBA
	case color.NRGBA64Model:
		return ModeRGBA16
	case color.GrayModel:
		return ModeGray
	case color.Gray16Model:
		return ModeGray16
	}
	if _, ok := m.(color.Palette); ok {
		return ModePaletted
	}
	return ModeOther
}
