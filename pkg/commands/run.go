package commands

import (
	"time"

	"github.com/crategroups/crategroups/pkg/execution"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/workspace"
)

// RunGroupOptions carries everything needed to run one build-tool
// subcommand against a group
type RunGroupOptions struct {
	Workspace  *workspace.Workspace
	Group      string
	Subcommand string

	// TopLevelOnly removes packages already covered as direct
	// dependencies of another matched package before building
	TopLevelOnly bool

	Runner  *execution.Runner
	Options []execution.OptionSet
}

// RunGroup resolves the group and spawns the build tool against the
// resolved set, returning the tool's exit code
func RunGroup(opts RunGroupOptions) (int, error) {
	logger := logging.GetLogger("commands.run")
	defer logging.LogDuration(time.Now(), "run "+opts.Subcommand)

	resolved, err := opts.Workspace.ResolveGroup(opts.Group, opts.TopLevelOnly)
	if err != nil {
		return 1, err
	}

	logger.Info().
		Str("group", opts.Group).
		Str("subcommand", opts.Subcommand).
		Int("packages", len(resolved)).
		Bool("topLevelOnly", opts.TopLevelOnly).
		Msg("Running build tool on group")

	return opts.Runner.Run(opts.Subcommand, resolved, opts.Options...)
}
