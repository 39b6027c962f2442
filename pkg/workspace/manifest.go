package workspace

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/groups"
	"github.com/crategroups/crategroups/pkg/logging"
)

// ManifestName is the file the ancestor walk looks for
const ManifestName = "Cargo.toml"

// rootManifest is the subset of the workspace manifest crategroups reads:
// the group definitions under [workspace.metadata.groups]
type rootManifest struct {
	Workspace struct {
		Metadata struct {
			Groups map[string][]string `toml:"groups"`
		} `toml:"metadata"`
	} `toml:"workspace"`
}

// FindManifest returns the path to the root manifest. An explicit
// manifestPath wins; otherwise the ancestors of cwd are walked until a
// Cargo.toml is found.
func FindManifest(cwd, manifestPath string) (string, error) {
	if manifestPath != "" {
		return manifestPath, nil
	}

	logger := logging.GetLogger("workspace.manifest")

	dir := cwd
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			logger.Trace().Str("path", candidate).Msg("Found workspace manifest")
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.New(errors.ErrManifestNotFound, "Cargo.toml not found").
		WithDetail("cwd", cwd)
}

// LoadGroups parses the group definitions from the root manifest. A manifest
// without a groups table yields an empty definition set, which is valid.
func LoadGroups(manifestPath string) (groups.Definitions, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		// A missing manifest and an unreadable one are different failures
		code := errors.ErrManifestRead
		if os.IsNotExist(err) {
			code = errors.ErrManifestNotFound
		}
		return nil, errors.Wrap(err, code, "cannot read workspace manifest").
			WithDetail("path", manifestPath)
	}

	var manifest rootManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse workspace manifest").
			WithDetail("path", manifestPath)
	}

	return groups.Definitions(manifest.Workspace.Metadata.Groups), nil
}
