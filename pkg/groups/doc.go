// Package groups implements the group resolution engine: classifying raw
// group patterns into name and path globs, matching them against the
// workspace package list, and optionally reducing the matched set to
// top-level packages (those not depended on by another matched package).
//
// The engine is pure: it consumes a pre-parsed package list and a group's
// pattern list and produces a fresh package set on every call. Workspace
// discovery and process execution live in their own packages.
package groups
