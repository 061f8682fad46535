package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverOptions controls which text files are scanned for references.
type DiscoverOptions struct {
	Extensions []string // without dot, lowercase
	SkipDirs   []string // directory names pruned before descending
	Exclude    []string // doublestar globs against the slash path relative to root
}

// FindImages walks root and returns every file whose extension is "png" in
// any case, in lexical walk order. Unreadable subdirectories are skipped.
func FindImages(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return skipUnreadable(root, path, d, err)
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".png") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FindTextCandidates walks root and returns files whose extension is in
// opts.Extensions (case-insensitive). Hidden directories, directories named
// in opts.SkipDirs, and anything matching opts.Exclude are pruned before
// descending. Hidden files themselves are still candidates.
func FindTextCandidates(root string, opts DiscoverOptions) ([]string, error) {
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts["."+strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, s := range opts.SkipDirs {
		skip[s] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return skipUnreadable(root, path, d, err)
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") || skip[name] || excluded(root, path, opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if excluded(root, path, opts.Exclude) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// excluded reports whether path matches any glob. Invalid patterns never
// match; config validation is the place to reject them.
func excluded(root, path string, globs []string) bool {
	if len(globs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range globs {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// skipUnreadable keeps a walk going past unreadable entries below root. An
// error on root itself is returned.
func skipUnreadable(root, path string, d fs.DirEntry, err error) error {
	if path == root {
		return err
	}
	if d != nil && d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}
