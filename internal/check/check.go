// Package check validates the blog layout before any file is touched. A
// failure here is the only fatal error of a run.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/pngjpg/internal/config"
)

// Sentinel errors returned by ValidateLayout.
var (
	ErrBlogDirNotFound   = errors.New("blog directory not found")
	ErrImagesDirNotFound = errors.New("images directory not found")
)

// Layout holds the resolved directories of a run.
type Layout struct {
	Root   string // absolute, symlink-resolved blog directory
	Images string // absolute images directory under Root
}

// ValidateLayout resolves cfg.BlogDir and requires it and the images
// subdirectory to exist as directories. The returned error wraps one of the
// sentinels together with the offending path.
func ValidateLayout(cfg *config.Config) (Layout, error) {
	root, err := absPath(cfg.BlogDir)
	if err != nil || !isDir(root) {
		shown := cfg.BlogDir
		if abs, aerr := filepath.Abs(cfg.BlogDir); aerr == nil {
			shown = abs
		}
		return Layout{}, fmt.Errorf("%w: %s", ErrBlogDirNotFound, shown)
	}

	images := filepath.Join(root, filepath.FromSlash(cfg.ImagesDir))
	if !isDir(images) {
		return Layout{}, fmt.Errorf("%w: %s", ErrImagesDirNotFound, images)
	}
	return Layout{Root: root, Images: images}, nil
}

// absPath returns the absolute, symlink-resolved form of path so that
// reference forms are computed against the real tree.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
