// Package types defines the core types shared across crategroups.
// This is mainly Package, the read-only workspace member record the
// group resolver operates on.
package types
