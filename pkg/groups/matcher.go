package groups

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/types"
)

// Pattern prefixes selecting the namespace a glob matches against.
// An unprefixed pattern matches paths, mirroring how cargo's own
// package-selection globs behave.
const (
	NamePrefix = "pkg:"
	PathPrefix = "path:"
)

// Matcher holds the compiled glob sets for one group: one set over package
// names, one over workspace-relative paths. It is immutable after Compile
// and safe for concurrent queries.
type Matcher struct {
	byName []glob.Glob
	byPath []glob.Glob
}

// Compile classifies each raw pattern by prefix and compiles it into the
// matcher. Any invalid glob fails the whole group; no partial matcher is
// returned.
//
// Glob dialect is github.com/gobwas/glob. Path globs compile with '/' as
// separator, so '*' and '?' stay within one path segment while '**' crosses
// segments. Name globs compile without a separator since package names have
// no hierarchy.
func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{}

	for _, pattern := range patterns {
		switch {
		case strings.HasPrefix(pattern, NamePrefix):
			g, err := glob.Compile(strings.TrimPrefix(pattern, NamePrefix))
			if err != nil {
				return nil, invalidPattern(err, pattern)
			}
			m.byName = append(m.byName, g)

		case strings.HasPrefix(pattern, PathPrefix):
			g, err := glob.Compile(strings.TrimPrefix(pattern, PathPrefix), '/')
			if err != nil {
				return nil, invalidPattern(err, pattern)
			}
			m.byPath = append(m.byPath, g)

		default:
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, invalidPattern(err, pattern)
			}
			m.byPath = append(m.byPath, g)
		}
	}

	return m, nil
}

func invalidPattern(err error, pattern string) error {
	return errors.Wrapf(err, errors.ErrPatternInvalid, "invalid pattern %q", pattern).
		WithDetail("pattern", pattern)
}

// MatchesName reports whether the package name matches the name glob set
func (m *Matcher) MatchesName(name string) bool {
	for _, g := range m.byName {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// MatchesPath reports whether the workspace-relative path matches the path
// glob set
func (m *Matcher) MatchesPath(path string) bool {
	for _, g := range m.byPath {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Matches reports whether the package is selected by either glob set
func (m *Matcher) Matches(pkg types.Package) bool {
	return m.MatchesName(pkg.Name) || m.MatchesPath(pkg.Path)
}
