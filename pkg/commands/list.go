package commands

import (
	"sort"

	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/types"
	"github.com/crategroups/crategroups/pkg/workspace"
)

// GroupListing is one group with its resolved members, sorted by package
// name for stable display
type GroupListing struct {
	Name     string
	Packages []types.Package
}

// ListGroups resolves every group in the workspace, or just the named one
// when name is non-empty. Listings come back sorted by group name; listing
// never applies top-level reduction since it shows what a group means, not
// what would be built.
func ListGroups(ws *workspace.Workspace, name string) ([]GroupListing, error) {
	logger := logging.GetLogger("commands.list")

	names := ws.Groups.Names()
	if name != "" {
		if _, err := ws.Groups.Get(name); err != nil {
			return nil, err
		}
		names = []string{name}
	}

	listings := make([]GroupListing, 0, len(names))
	for _, groupName := range names {
		resolved, err := ws.ResolveGroup(groupName, false)
		if err != nil {
			return nil, err
		}

		sort.Slice(resolved, func(i, j int) bool {
			return resolved[i].Name < resolved[j].Name
		})

		listings = append(listings, GroupListing{Name: groupName, Packages: resolved})
	}

	logger.Debug().Int("groups", len(listings)).Msg("Resolved group listings")
	return listings, nil
}
