// Package rewrite updates PNG references to their JPEG replacements inside
// text files.
//
// Two passes run over an in-memory copy of the content: exact substitution
// of every mapped reference, then a fixed list of suffix patterns that turn
// a ".png" extension into ".jpg" when it is followed by a quote, backtick,
// closing parenthesis, or line end. The second pass catches paths assembled
// at runtime (template strings, concatenation) that no mapped reference
// matches in full.
package rewrite

import (
	"regexp"
	"strings"

	"github.com/backmassage/pngjpg/internal/naming"
)

// Marker is the literal substring counted to measure replacements.
const Marker = ".png"

// suffixRule is one fixed pattern substitution.
type suffixRule struct {
	re   *regexp.Regexp
	repl string
}

// suffixRules run in order. After the first rule the two quote rules have
// nothing left to match; only the line-end rule adds coverage.
var suffixRules = []suffixRule{
	{regexp.MustCompile("\\.png([`'\")])"), ".jpg${1}"},
	{regexp.MustCompile(`\.png'`), ".jpg'"},
	{regexp.MustCompile(`\.png"`), `.jpg"`},
	{regexp.MustCompile(`(?m)\.png$`), ".jpg"},
}

// Rewrite applies the exact pass for m and then the suffix pass to content.
// It returns the new content and the replacement count: occurrences of
// ".png" before minus occurrences after.
//
// The count is a diagnostic, not an exact tally. ".png" inside an unrelated
// word counts when a pattern touches it, and a mapped reference whose
// extension is not lowercase ".png" changes content without counting.
func Rewrite(content string, m naming.Mapping) (string, int) {
	out := content
	m.Each(func(oldRef, newRef string) {
		if strings.Contains(out, oldRef) {
			out = strings.ReplaceAll(out, oldRef, newRef)
		}
	})
	for _, r := range suffixRules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return out, CountReplacements(content, out)
}

// CountReplacements returns how many ".png" substrings disappeared between
// before and after.
func CountReplacements(before, after string) int {
	return strings.Count(before, Marker) - strings.Count(after, Marker)
}
