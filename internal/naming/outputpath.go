package naming

import (
	"path/filepath"
	"strings"
)

// JPEGPath returns the conversion target for a PNG: same directory, same
// stem, ".jpg" extension. The source extension is replaced whatever its case.
//
//	assets/images/fig.png -> assets/images/fig.jpg
//	assets/images/Fig.PNG -> assets/images/Fig.jpg
func JPEGPath(png string) string {
	return strings.TrimSuffix(png, filepath.Ext(png)) + ".jpg"
}

// ReferenceForm returns p relative to root with forward slashes: the string
// searched for inside text files.
func ReferenceForm(root, p string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &OutsideRootError{Root: root, Path: p}
	}
	return filepath.ToSlash(rel), nil
}

// OutsideRootError is returned by [ReferenceForm] for paths that do not
// live under the root.
type OutsideRootError struct {
	Root string
	Path string
}

func (e *OutsideRootError) Error() string {
	return "path " + e.Path + " is outside " + e.Root
}
