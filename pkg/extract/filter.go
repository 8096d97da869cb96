package extract

import (
	"path"
	"strings"

	"promptclip/pkg/ignore"
)

// PathFilter decides whether a discovered file is eligible for extraction.
type PathFilter struct {
	extensions map[string]bool
	rules      *ignore.Ruleset
}

// NewPathFilter builds a filter from the default extension allow-set and
// ignore patterns.
func NewPathFilter() *PathFilter {
	return NewPathFilterWithRules(DefaultExtensions, ignore.MustCompile(DefaultIgnorePatterns...))
}

// NewPathFilterWithRules builds a filter from an explicit extension list and
// ignore ruleset.
func NewPathFilterWithRules(extensions []string, rules *ignore.Ruleset) *PathFilter {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = true
	}
	return &PathFilter{extensions: allowed, rules: rules}
}

// Eligible reports whether the file at relPath should be extracted. relPath
// must be slash-separated and relative to the scan root. Test files are
// always rejected, then the extension allow-set and ignore patterns apply.
func (f *PathFilter) Eligible(relPath string) bool {
	name := path.Base(relPath)
	if strings.Contains(name, ".test.") {
		return false
	}
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if !f.extensions[ext] {
		return false
	}
	return !f.rules.MatchesPath(relPath)
}
