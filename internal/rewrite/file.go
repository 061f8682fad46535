package rewrite

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/backmassage/pngjpg/internal/naming"
)

// ErrNotText is returned for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// FileResult is the outcome of rewriting one file.
type FileResult struct {
	Path         string
	Replacements int  // 0 when nothing changed or on error
	Written      bool // false in dry-run mode
	Err          error
}

// Changed reports whether the file has (or in a dry run would have) been
// updated.
func (r FileResult) Changed() bool { return r.Err == nil && r.Replacements > 0 }

// writeFile is swapped in tests to simulate a failing write.
var writeFile = os.WriteFile

// RewriteFile reads path, applies [Rewrite], and writes the new content back
// in a single call when the replacement count is positive and dryRun is
// false. The file mode is preserved. Errors are returned in the result; on
// error the file is left untouched and Replacements is 0.
func RewriteFile(path string, m naming.Mapping, dryRun bool) FileResult {
	res := FileResult{Path: path}

	fi, err := os.Stat(path)
	if err != nil {
		res.Err = fmt.Errorf("stat %q: %w", path, err)
		return res
	}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read %q: %w", path, err)
		return res
	}
	if !utf8.Valid(data) {
		res.Err = fmt.Errorf("%w: %q", ErrNotText, path)
		return res
	}

	content := string(data)
	updated, count := Rewrite(content, m)
	if updated == content || count <= 0 {
		return res
	}

	if !dryRun {
		if err := writeFile(path, []byte(updated), fi.Mode().Perm()); err != nil {
			res.Err = fmt.Errorf("write %q: %w", path, err)
			return res
		}
		res.Written = true
	}
	res.Replacements = count
	return res
}
