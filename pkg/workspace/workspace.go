package workspace

import (
	"path/filepath"

	"github.com/crategroups/crategroups/pkg/groups"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/types"
)

// Workspace bundles everything a command needs: the manifest location, the
// group definitions, and the package list
type Workspace struct {
	// Root is the workspace root directory
	Root string

	// Manifest is the path to the root Cargo.toml
	Manifest string

	// Groups holds the group definitions from the manifest metadata
	Groups groups.Definitions

	// Packages lists all workspace members
	Packages []types.Package
}

// Load discovers the manifest starting at cwd (or uses manifestPath when
// given), reads its group definitions, and loads the package graph through
// the runner
func Load(cwd, manifestPath string, runner MetadataRunner) (*Workspace, error) {
	logger := logging.GetLogger("workspace")

	manifest, err := FindManifest(cwd, manifestPath)
	if err != nil {
		return nil, err
	}

	defs, err := LoadGroups(manifest)
	if err != nil {
		return nil, err
	}

	raw, err := runner.Metadata(manifest)
	if err != nil {
		return nil, err
	}

	packages, root, err := parsePackages(raw)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = filepath.Dir(manifest)
	}

	logger.Debug().
		Str("manifest", manifest).
		Int("packages", len(packages)).
		Int("groups", len(defs)).
		Msg("Workspace loaded")

	return &Workspace{
		Root:     root,
		Manifest: manifest,
		Groups:   defs,
		Packages: packages,
	}, nil
}

// ResolveGroup resolves a named group against the workspace package list
func (w *Workspace) ResolveGroup(name string, topLevelOnly bool) ([]types.Package, error) {
	return groups.ResolveGroup(w.Groups, name, w.Packages, topLevelOnly)
}
