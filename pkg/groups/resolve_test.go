// pkg/groups/resolve_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test group resolution and top-level reduction semantics

package groups_test

import (
	"sort"
	"testing"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/groups"
	"github.com/crategroups/crategroups/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedNames(packages []types.Package) []string {
	names := types.Names(packages)
	sort.Strings(names)
	return names
}

func TestResolveMatchesAll(t *testing.T) {
	workspace := []types.Package{
		{Name: "server", Path: "crates/server"},
		{Name: "client", Path: "crates/client"},
		{Name: "xtask", Path: "tools/xtask"},
	}

	m, err := groups.Compile([]string{"crates/*"})
	require.NoError(t, err)

	result := groups.Resolve(m, workspace, false)
	assert.Equal(t, []string{"client", "server"}, sortedNames(result))
}

func TestResolveTopLevelReduction(t *testing.T) {
	// A depends on B, B depends on C, D stands alone. All four match.
	workspace := []types.Package{
		{Name: "A", Path: "crates/A", Dependencies: []string{"B"}},
		{Name: "B", Path: "crates/B", Dependencies: []string{"C"}},
		{Name: "C", Path: "crates/C"},
		{Name: "D", Path: "crates/D"},
	}

	m, err := groups.Compile([]string{"crates/*"})
	require.NoError(t, err)

	result := groups.Resolve(m, workspace, true)

	// B is covered by A, and B still covers C even though B itself is
	// removed. D has no coverer and survives.
	assert.Equal(t, []string{"A", "D"}, sortedNames(result))
}

func TestResolveNoCoverageAcrossUnmatched(t *testing.T) {
	// A depends on B, B depends on C, but only A and C match the group.
	workspace := []types.Package{
		{Name: "A", Path: "apps/A", Dependencies: []string{"B"}},
		{Name: "B", Path: "libs/B", Dependencies: []string{"C"}},
		{Name: "C", Path: "apps/C"},
	}

	m, err := groups.Compile([]string{"apps/*"})
	require.NoError(t, err)

	result := groups.Resolve(m, workspace, true)

	// C's only coverer is B, which is not matched, so C stays.
	assert.Equal(t, []string{"A", "C"}, sortedNames(result))
}

func TestResolveReductionIdempotent(t *testing.T) {
	workspace := []types.Package{
		{Name: "A", Path: "crates/A", Dependencies: []string{"B"}},
		{Name: "B", Path: "crates/B", Dependencies: []string{"C"}},
		{Name: "C", Path: "crates/C"},
		{Name: "D", Path: "crates/D"},
	}

	m, err := groups.Compile([]string{"crates/*"})
	require.NoError(t, err)

	once := groups.Resolve(m, workspace, true)
	twice := groups.Resolve(m, once, true)
	assert.Equal(t, sortedNames(once), sortedNames(twice))
}

func TestResolveExternalDependenciesIgnored(t *testing.T) {
	// serde is not a workspace member; its name never appears in the
	// matched set, so the edge is inert.
	workspace := []types.Package{
		{Name: "A", Path: "crates/A", Dependencies: []string{"serde", "B"}},
		{Name: "B", Path: "crates/B", Dependencies: []string{"serde"}},
	}

	m, err := groups.Compile([]string{"crates/*"})
	require.NoError(t, err)

	result := groups.Resolve(m, workspace, true)
	assert.Equal(t, []string{"A"}, sortedNames(result))
}

func TestResolveDuplicateMatchDedup(t *testing.T) {
	workspace := []types.Package{
		{Name: "api", Path: "crates/api"},
	}

	// Both the name glob and the path glob select the same package
	m, err := groups.Compile([]string{"pkg:api", "crates/*", "crates/api"})
	require.NoError(t, err)

	result := groups.Resolve(m, workspace, false)
	assert.Len(t, result, 1)
	assert.Equal(t, "api", result[0].Name)
}

func TestResolveEmptyMatchIsNotAnError(t *testing.T) {
	workspace := []types.Package{
		{Name: "server", Path: "crates/server"},
	}

	result, err := groups.ResolveGroup(
		groups.Definitions{"ghosts": {"nothing/*"}},
		"ghosts", workspace, true)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestResolveGroupNotFound(t *testing.T) {
	defs := groups.Definitions{"backend": {"crates/*"}}

	for _, workspace := range [][]types.Package{
		nil,
		{{Name: "server", Path: "crates/server"}},
	} {
		_, err := groups.ResolveGroup(defs, "frontend", workspace, false)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGroupNotFound))
		assert.Contains(t, err.Error(), "frontend")
	}
}

func TestResolveGroupInvalidPattern(t *testing.T) {
	defs := groups.Definitions{"broken": {"crates/["}}

	_, err := groups.ResolveGroup(defs, "broken", nil, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
}

func TestDefinitionsNamesSorted(t *testing.T) {
	defs := groups.Definitions{
		"tools":   {"tools/*"},
		"backend": {"crates/*"},
	}
	assert.Equal(t, []string{"backend", "tools"}, defs.Names())
}
