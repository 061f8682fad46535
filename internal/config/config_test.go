package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestValidate_Quality(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"default", 85, false},
		{"maximum", 100, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"above range", 101, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Quality = tt.quality
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidQuality) {
				t.Errorf("Validate() error = %v, want ErrInvalidQuality", err)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{".HTML", "js", " md ", "", "js"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []string{"html", "js", "md"}
	if len(cfg.Extensions) != len(want) {
		t.Fatalf("Extensions = %v, want %v", cfg.Extensions, want)
	}
	for i := range want {
		if cfg.Extensions[i] != want[i] {
			t.Errorf("Extensions[%d] = %q, want %q", i, cfg.Extensions[i], want[i])
		}
	}
}

func TestValidate_RequiresExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{"", "."}
	if err := cfg.Validate(); !errors.Is(err, ErrNoExtensions) {
		t.Errorf("Validate() error = %v, want ErrNoExtensions", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"000000", color.RGBA{0, 0, 0, 255}, false},
		{"#f80", color.RGBA{0xff, 0x88, 0x00, 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Quality != 85 {
		t.Errorf("default Quality = %d, want 85", cfg.Quality)
	}
	if cfg.BlogDir != "." {
		t.Errorf("default BlogDir = %q, want \".\"", cfg.BlogDir)
	}
	if cfg.ImagesDir != "assets/images" {
		t.Errorf("default ImagesDir = %q, want assets/images", cfg.ImagesDir)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.RemovePNG {
		t.Error("default RemovePNG should be false")
	}
	if len(cfg.Extensions) != 6 {
		t.Errorf("default Extensions = %v, want 6 entries", cfg.Extensions)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pngjpg.toml")
	body := `quality = 70
dry_run = true
extensions = ["html", "md"]
strip_prefixes = ["assets/", "static/"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("pngjpg", pflag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse([]string{"--config", path, "--quality", "60", "--no-color"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := Resolve(fs, f)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Quality != 60 {
		t.Errorf("Quality = %d, want 60 (flag beats file)", cfg.Quality)
	}
	if !cfg.DryRun {
		t.Error("DryRun should come from the file")
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Extensions = %v, want file value", cfg.Extensions)
	}
	if len(cfg.StripPrefixes) != 2 {
		t.Errorf("StripPrefixes = %v, want file value", cfg.StripPrefixes)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if cfg.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, path)
	}
}

func TestResolve_UnsetFlagsKeepDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("pngjpg", pflag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse([]string{"--dry-run", "--exclude", "drafts/**", "--exclude", "*.min.js"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := Resolve(fs, f)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Quality != 85 || !cfg.DryRun || cfg.RemovePNG {
		t.Errorf("unexpected cfg: quality=%d dry=%v remove=%v", cfg.Quality, cfg.DryRun, cfg.RemovePNG)
	}
	if len(cfg.Exclude) != 2 {
		t.Errorf("Exclude = %v, want 2 globs", cfg.Exclude)
	}
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("qualty = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("LoadFile should reject unknown key")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), &cfg); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestValidate_ExcludeGlobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude = []string{"drafts/**", "**/*.min.js"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.Exclude = []string{"drafts/[unclosed"}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidGlob) {
		t.Errorf("Validate() error = %v, want ErrInvalidGlob", err)
	}
}
