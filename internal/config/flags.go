package config

// This file binds CLI flags onto a pflag.FlagSet (owned by the cobra root
// command) and applies them to a Config. Flags are captured into a separate
// struct and copied only when the user actually set them, so that values
// from DefaultConfig and the TOML file hold otherwise.

import (
	"github.com/spf13/pflag"
)

// Flags holds the raw flag values captured during parsing.
type Flags struct {
	configFile string
	blogDir    string
	imagesDir  string
	quality    int
	background string
	extensions []string
	skipDirs   []string
	exclude    []string
	strip      []string
	dryRun     bool
	removePNG  bool
	verbose    bool
	forceColor bool
	noColor    bool
}

// BindFlags registers every setting on fs and returns the capture struct.
func BindFlags(fs *pflag.FlagSet) *Flags {
	def := DefaultConfig()
	f := &Flags{}

	fs.StringVar(&f.configFile, "config", "", "TOML settings file (flags override its values)")

	// Paths.
	fs.StringVar(&f.blogDir, "blog-dir", def.BlogDir, "Path to blog directory")
	fs.StringVar(&f.imagesDir, "images-dir", def.ImagesDir, "Images directory, relative to --blog-dir")

	// Encoding.
	fs.IntVar(&f.quality, "quality", def.Quality, "JPEG quality (1-100)")
	fs.StringVar(&f.background, "background", def.Background, "Background color used to flatten transparency")

	// Reference scanning.
	fs.StringSliceVar(&f.extensions, "ext", def.Extensions, "Text file extensions scanned for references")
	fs.StringSliceVar(&f.skipDirs, "skip-dir", def.SkipDirs, "Dependency-cache directory names to skip")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "Glob (relative to --blog-dir) of files or dirs to skip; repeatable")
	fs.StringSliceVar(&f.strip, "strip-prefix", def.StripPrefixes, "Path prefixes stripped to build extra reference variants")

	// Behavior.
	fs.BoolVar(&f.dryRun, "dry-run", false, "Show what would be done without making changes")
	fs.BoolVar(&f.removePNG, "remove-png", false, "Remove original PNG files after conversion")

	// Display.
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")

	fs.SortFlags = false
	return f
}

// ConfigPath returns the --config value.
func (f *Flags) ConfigPath() string { return f.configFile }

// ApplyFlags copies the flags the user set on the command line into cfg.
func ApplyFlags(fs *pflag.FlagSet, f *Flags, cfg *Config) {
	if fs.Changed("blog-dir") {
		cfg.BlogDir = f.blogDir
	}
	if fs.Changed("images-dir") {
		cfg.ImagesDir = f.imagesDir
	}
	if fs.Changed("quality") {
		cfg.Quality = f.quality
	}
	if fs.Changed("background") {
		cfg.Background = f.background
	}
	if fs.Changed("ext") {
		cfg.Extensions = f.extensions
	}
	if fs.Changed("skip-dir") {
		cfg.SkipDirs = f.skipDirs
	}
	if fs.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if fs.Changed("strip-prefix") {
		cfg.StripPrefixes = f.strip
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if fs.Changed("remove-png") {
		cfg.RemovePNG = f.removePNG
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// Resolve builds the effective Config: defaults, then the --config file (if
// given), then explicitly set flags, then validation.
func Resolve(fs *pflag.FlagSet, f *Flags) (Config, error) {
	cfg := DefaultConfig()
	if path := f.ConfigPath(); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	ApplyFlags(fs, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
