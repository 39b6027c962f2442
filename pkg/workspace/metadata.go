package workspace

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/types"
)

// MetadataRunner executes the build tool's metadata command and returns its
// raw JSON output
type MetadataRunner interface {
	Metadata(manifestPath string) ([]byte, error)
}

// CargoMetadataRunner shells out to `cargo metadata --format-version 1`
type CargoMetadataRunner struct {
	// Cargo overrides the binary name; empty means "cargo" from PATH
	Cargo string
}

// Metadata implements MetadataRunner
func (r *CargoMetadataRunner) Metadata(manifestPath string) ([]byte, error) {
	cargo := r.Cargo
	if cargo == "" {
		cargo = "cargo"
	}

	bin, err := exec.LookPath(cargo)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrToolNotFound, "%s not found in PATH", cargo)
	}

	args := []string{"metadata", "--format-version", "1", "--manifest-path", manifestPath}
	logging.LogCommand(bin, args)

	cmd := exec.Command(bin, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMetadataLoad, "cargo metadata failed").
			WithDetail("manifest", manifestPath)
	}

	return out, nil
}

// metadataJSON is the subset of the metadata output crategroups decodes
type metadataJSON struct {
	Packages []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		ManifestPath string `json:"manifest_path"`
		Dependencies []struct {
			Name string `json:"name"`
		} `json:"dependencies"`
	} `json:"packages"`
	WorkspaceMembers []string `json:"workspace_members"`
	WorkspaceRoot    string   `json:"workspace_root"`
}

// parsePackages decodes metadata JSON into the workspace member list and the
// workspace root directory. Non-member packages (registry dependencies) are
// dropped.
func parsePackages(raw []byte) ([]types.Package, string, error) {
	var meta metadataJSON
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrMetadataParse, "failed to parse metadata output")
	}

	members := make(map[string]struct{}, len(meta.WorkspaceMembers))
	for _, id := range meta.WorkspaceMembers {
		members[id] = struct{}{}
	}

	var packages []types.Package
	for _, p := range meta.Packages {
		if _, ok := members[p.ID]; !ok {
			continue
		}

		rel, err := workspaceRelativePath(meta.WorkspaceRoot, p.ManifestPath)
		if err != nil {
			return nil, "", errors.Wrapf(err, errors.ErrMetadataParse,
				"package %s is not under the workspace root", p.Name).
				WithDetail("manifest", p.ManifestPath)
		}

		deps := make([]string, 0, len(p.Dependencies))
		for _, d := range p.Dependencies {
			deps = append(deps, d.Name)
		}

		packages = append(packages, types.Package{
			Name:         p.Name,
			Path:         rel,
			Dependencies: deps,
		})
	}

	return packages, meta.WorkspaceRoot, nil
}

// workspaceRelativePath returns the package directory relative to the
// workspace root, forward-slash separated. The root package itself resolves
// to the empty path.
func workspaceRelativePath(root, manifestPath string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(manifestPath))
	if err != nil {
		return "", err
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}
	return rel, nil
}
