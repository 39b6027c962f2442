package groups

import (
	"sort"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/types"
)

// Definitions maps a group name to its ordered raw pattern list.
// The mapping is read once from the workspace manifest and treated as
// immutable for the duration of a resolution.
type Definitions map[string][]string

// Get returns the pattern list for a group name
func (d Definitions) Get(name string) ([]string, error) {
	patterns, ok := d[name]
	if !ok {
		return nil, errors.Newf(errors.ErrGroupNotFound, "group %s not found", name).
			WithDetail("group", name).
			WithDetail("available", d.Names())
	}
	return patterns, nil
}

// Names returns the group names sorted alphabetically
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the workspace packages selected by the matcher, unique by
// name. When topLevelOnly is set, packages that are direct dependencies of
// another matched package are removed from the result.
//
// Output ordering is unspecified; callers that need deterministic output
// must sort explicitly.
func Resolve(m *Matcher, packages []types.Package, topLevelOnly bool) []types.Package {
	logger := logging.GetLogger("groups.resolver")

	seen := make(map[string]struct{}, len(packages))
	var matched []types.Package
	for _, pkg := range packages {
		if !m.Matches(pkg) {
			continue
		}
		if _, dup := seen[pkg.Name]; dup {
			continue
		}
		seen[pkg.Name] = struct{}{}
		matched = append(matched, pkg)
	}

	logger.Debug().
		Int("matched", len(matched)).
		Int("total", len(packages)).
		Bool("topLevelOnly", topLevelOnly).
		Msg("Matched group packages")

	if !topLevelOnly {
		return matched
	}

	reduced := reduceToTopLevel(matched)
	logger.Debug().
		Int("before", len(matched)).
		Int("after", len(reduced)).
		Msg("Reduced group to top-level packages")

	return reduced
}

// ResolveGroup looks up a group by name, compiles its patterns and resolves
// the matching package set
func ResolveGroup(defs Definitions, name string, packages []types.Package, topLevelOnly bool) ([]types.Package, error) {
	patterns, err := defs.Get(name)
	if err != nil {
		return nil, err
	}

	matcher, err := Compile(patterns)
	if err != nil {
		return nil, err
	}

	return Resolve(matcher, packages, topLevelOnly), nil
}

// reduceToTopLevel removes matched packages that another matched package
// directly depends on. Building the dependent already builds them, and
// selecting both explicitly risks resolving two versions of the dependency
// with conflicting features in one build graph.
//
// Every originally matched package contributes its dependency edges, even a
// package that itself gets removed, so a fully matched chain A -> B -> C
// collapses to A alone. Coverage only exists between two matched packages:
// an unmatched intermediary neither removes nor protects anything, so with
// only A and C matched in that chain both survive.
func reduceToTopLevel(matched []types.Package) []types.Package {
	remaining := make(map[string]struct{}, len(matched))
	for _, pkg := range matched {
		remaining[pkg.Name] = struct{}{}
	}

	for _, pkg := range matched {
		for _, dep := range pkg.Dependencies {
			delete(remaining, dep)
		}
	}

	result := make([]types.Package, 0, len(remaining))
	for _, pkg := range matched {
		if _, ok := remaining[pkg.Name]; ok {
			result = append(result, pkg)
		}
	}
	return result
}
