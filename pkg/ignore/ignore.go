// Package ignore matches paths against glob rules relative to a scan root.
package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Rule encapsulates a compiled glob pattern and its original text.
type Rule struct {
	Pattern glob.Glob // Compiled glob for the pattern.
	Line    string    // Original pattern text.
}

// Ruleset represents a collection of ignore patterns.
type Ruleset struct {
	Rules []*Rule // List of compiled ignore patterns.
}

// Compile builds a Ruleset from glob pattern lines. Patterns are matched
// against slash-separated paths relative to the scan root. A single `*`
// stays within one path segment; `**` crosses segments.
func Compile(patterns ...string) (*Ruleset, error) {
	rs := &Ruleset{Rules: make([]*Rule, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling ignore pattern %q: %w", p, err)
		}
		rs.Rules = append(rs.Rules, &Rule{Pattern: g, Line: p})
	}
	return rs, nil
}

// MustCompile is like Compile but panics on an invalid pattern. Use it for
// fixed pattern lists known at build time.
func MustCompile(patterns ...string) *Ruleset {
	rs, err := Compile(patterns...)
	if err != nil {
		panic(err)
	}
	return rs
}

// MatchesPath checks if a path matches any of the ignore patterns.
func (rs *Ruleset) MatchesPath(path string) bool {
	matches, _ := rs.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern checks if a path matches any ignore pattern and
// returns the matched rule if applicable.
func (rs *Ruleset) MatchesPathWithPattern(path string) (bool, *Rule) {
	normalizedPath := normalizePath(path)
	for _, rule := range rs.Rules {
		if rule.Pattern.Match(normalizedPath) {
			return true, rule
		}
	}
	return false, nil
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
