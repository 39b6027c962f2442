package crategroups

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/crategroups/crategroups/internal/version"
	"github.com/crategroups/crategroups/pkg/commands"
	"github.com/crategroups/crategroups/pkg/config"
	"github.com/crategroups/crategroups/pkg/execution"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/style"
	"github.com/crategroups/crategroups/pkg/workspace"
)

// exitFunc is swapped out in tests
var exitFunc = os.Exit

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity    int
		cwd          string
		manifestPath string
	)

	rootCmd := &cobra.Command{
		Use:     "crategroups",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			style.DisableColorsIfNotTTY()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&cwd, "cwd", "", MsgFlagCwd)
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest-path", "", MsgFlagManifestPath)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Custom usage template with bold section headers
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRunCmd(&cwd, &manifestPath, runCmdSpec{
		use: "build <group>", short: MsgBuildShort, subcommand: "build", topLevelOnly: true,
	}))
	rootCmd.AddCommand(newRunCmd(&cwd, &manifestPath, runCmdSpec{
		use: "test <group>", short: MsgTestShort, subcommand: "test", topLevelOnly: false,
	}))
	rootCmd.AddCommand(newRunCmd(&cwd, &manifestPath, runCmdSpec{
		use: "check <group>", short: MsgCheckShort, subcommand: "check", topLevelOnly: true,
	}))
	rootCmd.AddCommand(newRunCmd(&cwd, &manifestPath, runCmdSpec{
		use: "clippy <group>", short: MsgClippyShort, subcommand: "clippy", topLevelOnly: true,
		fixFlags: true,
	}))
	rootCmd.AddCommand(newListCmd(&cwd, &manifestPath))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runCmdSpec describes one build-tool subcommand wrapper
type runCmdSpec struct {
	use        string
	short      string
	subcommand string

	// topLevelOnly enables top-level reduction: packages covered as
	// direct dependencies of another group member are not selected
	// explicitly. test keeps the full set since every member's own test
	// suite should run.
	topLevelOnly bool

	// fixFlags adds clippy's --fix/--allow-dirty pair
	fixFlags bool
}

func newRunCmd(cwd, manifestPath *string, spec runCmdSpec) *cobra.Command {
	var (
		features   []string
		allFeats   bool
		noDefFeats bool
		release    bool
		fix        bool
		allowDirty bool
	)

	cmd := &cobra.Command{
		Use:     spec.use,
		Short:   spec.short,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := loadWorkspace(*cwd, *manifestPath)
			if err != nil {
				return err
			}

			opts := []execution.OptionSet{
				execution.FeatureOptions{
					Features:          features,
					AllFeatures:       allFeats,
					NoDefaultFeatures: noDefFeats,
				},
				execution.BuildOptions{Release: release},
			}
			if spec.fixFlags {
				opts = append(opts, execution.FixOptions{Fix: fix, AllowDirty: allowDirty})
			}

			code, err := commands.RunGroup(commands.RunGroupOptions{
				Workspace:    ws,
				Group:        args[0],
				Subcommand:   spec.subcommand,
				TopLevelOnly: spec.topLevelOnly,
				Runner:       &execution.Runner{Cargo: cfg.Tool.Command, Dir: ws.Root},
				Options:      opts,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				// Mirror the build tool's exit status
				exitFunc(code)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&features, "features", nil, MsgFlagFeatures)
	cmd.Flags().BoolVar(&allFeats, "all-features", false, MsgFlagAllFeatures)
	cmd.Flags().BoolVar(&noDefFeats, "no-default-features", false, MsgFlagNoDefaultFeatures)
	cmd.Flags().BoolVar(&release, "release", false, MsgFlagRelease)
	if spec.fixFlags {
		cmd.Flags().BoolVar(&fix, "fix", false, MsgFlagFix)
		cmd.Flags().BoolVar(&allowDirty, "allow-dirty", false, MsgFlagAllowDirty)
	}

	return cmd
}

// loadWorkspace wires configuration and workspace loading for a command
func loadWorkspace(cwd, manifestPath string) (*workspace.Workspace, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cwd == "" {
		cwd, err = os.Getwd()
		if err != nil {
			return nil, nil, err
		}
	}

	runner := &workspace.CargoMetadataRunner{Cargo: cfg.Tool.Command}
	ws, err := workspace.Load(cwd, manifestPath, runner)
	if err != nil {
		return nil, nil, err
	}

	return ws, cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "crategroups version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
