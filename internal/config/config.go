// Package config holds runtime configuration: defaults, the optional TOML
// settings file, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Sentinel validation errors, matched with errors.Is by callers and tests.
var (
	ErrInvalidQuality    = errors.New("quality must be between 1 and 100")
	ErrInvalidBackground = errors.New("background must be a hex color like #ffffff")
	ErrNoExtensions      = errors.New("at least one text extension is required")
	ErrEmptyImagesDir    = errors.New("images directory must not be empty")
	ErrInvalidGlob       = errors.New("invalid exclude pattern")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then by CLI flags via [ApplyFlags],
// and finally checked by [Config.Validate].
type Config struct {
	// Paths.
	BlogDir   string `toml:"blog_dir"`   // Default: ".".
	ImagesDir string `toml:"images_dir"` // Relative to BlogDir. Default: "assets/images".

	// Encoding.
	Quality    int    `toml:"quality"`    // Default: 85.
	Background string `toml:"background"` // Flatten color. Default: "#ffffff".

	// Reference scanning.
	Extensions    []string `toml:"extensions"`     // Default: html, js, css, md, json, txt.
	SkipDirs      []string `toml:"skip_dirs"`      // Default: node_modules. Hidden dirs are always pruned.
	Exclude       []string `toml:"exclude"`        // doublestar globs relative to BlogDir.
	StripPrefixes []string `toml:"strip_prefixes"` // Default: "assets/".

	// Behavior flags.
	DryRun    bool `toml:"dry_run"`
	RemovePNG bool `toml:"remove_png"`

	// Display.
	Verbose   bool      `toml:"verbose"`
	ColorMode ColorMode `toml:"color"`

	// ConfigFile is the TOML file the settings were loaded from, if any.
	ConfigFile string `toml:"-"`
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before file and flag overrides.
func DefaultConfig() Config {
	return Config{
		BlogDir:       ".",
		ImagesDir:     "assets/images",
		Quality:       85,
		Background:    "#ffffff",
		Extensions:    []string{"html", "js", "css", "md", "json", "txt"},
		SkipDirs:      []string{"node_modules"},
		StripPrefixes: []string{"assets/"},
		ColorMode:     ColorAuto,
	}
}

// Validate checks ranges and enum fields and canonicalizes list values
// (extensions lose their leading dot and are lowercased).
func (c *Config) Validate() error {
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w (got %d)", ErrInvalidQuality, c.Quality)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return err
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if strings.TrimSpace(c.ImagesDir) == "" {
		return ErrEmptyImagesDir
	}
	if strings.TrimSpace(c.BlogDir) == "" {
		c.BlogDir = "."
	}

	exts := normalizeExtensions(c.Extensions)
	if len(exts) == 0 {
		return ErrNoExtensions
	}
	c.Extensions = exts
	c.SkipDirs = compact(c.SkipDirs)
	c.Exclude = compact(c.Exclude)
	for _, g := range c.Exclude {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("%w %q", ErrInvalidGlob, g)
		}
	}
	c.StripPrefixes = compact(c.StripPrefixes)
	return nil
}

// BackgroundColor returns the parsed flatten color. Call after Validate.
func (c *Config) BackgroundColor() color.RGBA {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return bg
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%w (got %q)", ErrInvalidBackground, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w (got %q)", ErrInvalidBackground, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// normalizeExtensions lowercases, strips leading dots, and drops blanks and
// duplicates while keeping the first-seen order.
func normalizeExtensions(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
