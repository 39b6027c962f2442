// Package workspace locates the root manifest, reads the group definitions
// from its [workspace.metadata.groups] table, and loads the workspace
// package graph from the build tool's metadata command.
//
// The metadata command runs behind the MetadataRunner interface so tests can
// substitute canned JSON output.
package workspace
