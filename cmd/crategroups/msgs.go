package crategroups

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Run cargo commands on a group of crates in a workspace"
	MsgRootLong  = `crategroups resolves a named group of crates, declared as glob patterns
under [workspace.metadata.groups] in the root Cargo.toml, into a concrete
package set and runs a cargo command against exactly that set.

Patterns match the crate's workspace-relative path by default. Prefix a
pattern with "pkg:" to match crate names instead, or "path:" to make the
path matching explicit.`

	MsgBuildShort      = "Build a group of crates"
	MsgTestShort       = "Test a group of crates"
	MsgCheckShort      = "Check a group of crates"
	MsgClippyShort     = "Run clippy on a group of crates"
	MsgListShort       = "List the groups in the workspace"
	MsgListLong        = "List displays every group and its resolved member crates. Add a group name to list that specific group."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoGroupsFound = "No groups found"

	// Flag descriptions
	MsgFlagVerbose           = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCwd               = "Directory to resolve the workspace from (default: current directory)"
	MsgFlagManifestPath      = "Path to the root Cargo.toml (skips the ancestor search)"
	MsgFlagFeatures          = "Space or comma separated list of features to activate"
	MsgFlagAllFeatures       = "Activate all available features"
	MsgFlagNoDefaultFeatures = "Do not activate the default feature"
	MsgFlagRelease           = "Build artifacts in release mode, with optimizations"
	MsgFlagFix               = "Automatically apply lint suggestions"
	MsgFlagAllowDirty        = "Fix code even if the working directory is dirty"
)

// Longer messages kept in separate files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	// MsgUsageTemplate renders grouped commands with bold section headers
	MsgUsageTemplate = strings.TrimSpace(msgUsageTemplateRaw)
)
