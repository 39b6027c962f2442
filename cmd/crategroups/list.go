package crategroups

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/crategroups/crategroups/pkg/commands"
	"github.com/crategroups/crategroups/pkg/style"
)

func newListCmd(cwd, manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "list [group]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := loadWorkspace(*cwd, *manifestPath)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			if name == "" && len(ws.Groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoGroupsFound)
				return nil
			}

			listings, err := commands.ListGroups(ws, name)
			if err != nil {
				return err
			}

			renderListings(cmd.OutOrStdout(), listings, cfg.List.ShowPaths)
			return nil
		},
	}
}

// renderListings prints each group header and its members, one per line
func renderListings(w io.Writer, listings []commands.GroupListing, showPaths bool) {
	for _, listing := range listings {
		fmt.Fprintln(w, style.GroupHeaderStyle.Render("["+listing.Name+"]"))
		for _, pkg := range listing.Packages {
			if showPaths {
				fmt.Fprintf(w, "  %s %s\n", pkg.Name, style.PathStyle.Render(pkg.Path))
			} else {
				fmt.Fprintf(w, "  %s\n", pkg.Name)
			}
		}
	}
}
