package naming

import (
	"path/filepath"
	"sort"
	"strings"
)

// Pair is one successful conversion: the PNG that was read and the JPEG
// that was (or, in a dry run, would be) written.
type Pair struct {
	PNG  string
	JPEG string
}

// Mapping is the immutable old-reference to new-reference table used by
// the rewriter. Construct it with [BuildMapping].
type Mapping struct {
	refs map[string]string
	keys []string // longest first, then lexicographic
}

// BuildMapping derives the replacement table for pairs relative to root.
//
// Each pair contributes its reference form ("assets/images/a.png" ->
// "assets/images/a.jpg") and, for every prefix in stripPrefixes the old
// reference starts with, a variant without that prefix ("images/a.png" ->
// "images/a.jpg") to catch links that omit a common root segment. Paths that
// cannot be expressed relative to root fall back to bare file names.
func BuildMapping(root string, pairs []Pair, stripPrefixes []string) Mapping {
	refs := make(map[string]string, len(pairs)*2)
	for _, p := range pairs {
		oldRef, errOld := ReferenceForm(root, p.PNG)
		newRef, errNew := ReferenceForm(root, p.JPEG)
		if errOld != nil || errNew != nil {
			refs[filepath.Base(p.PNG)] = filepath.Base(p.JPEG)
			continue
		}
		refs[oldRef] = newRef
		for _, prefix := range stripPrefixes {
			if prefix == "" || !strings.HasPrefix(oldRef, prefix) || !strings.HasPrefix(newRef, prefix) {
				continue
			}
			if stripped := strings.TrimPrefix(oldRef, prefix); stripped != "" {
				refs[stripped] = strings.TrimPrefix(newRef, prefix)
			}
		}
	}
	return newMapping(refs)
}

// NewMapping builds a Mapping from an explicit table. The map is copied.
func NewMapping(refs map[string]string) Mapping {
	cp := make(map[string]string, len(refs))
	for k, v := range refs {
		if k != "" {
			cp[k] = v
		}
	}
	return newMapping(cp)
}

func newMapping(refs map[string]string) Mapping {
	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return Mapping{refs: refs, keys: keys}
}

// Len returns the number of entries.
func (m Mapping) Len() int { return len(m.keys) }

// Keys returns the old references in application order: longest first, so
// a prefix-stripped key never rewrites part of a longer reference before
// that reference has been tried.
func (m Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the new reference for old.
func (m Mapping) Get(old string) (string, bool) {
	v, ok := m.refs[old]
	return v, ok
}

// Each calls fn for every entry in application order.
func (m Mapping) Each(fn func(oldRef, newRef string)) {
	for _, k := range m.keys {
		fn(k, m.refs[k])
	}
}
