package probe

import (
	"errors"
	"fmt"
	"image/png"
	"os"
)

// ErrNotPNG is returned when a file's header is not a valid PNG header.
var ErrNotPNG = errors.New("not a PNG file")

// Inspect reads only the PNG header of path and returns its dimensions,
// color mode, and on-disk size. Pixel data is not decoded.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("stat %q: %w", path, err)
	}

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %q: %v", ErrNotPNG, path, err)
	}

	return Info{
		Path:   path,
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   Classify(cfg.ColorModel),
		Size:   fi.Size(),
	}, nil
}
