// Package commands implements the business logic behind each CLI
// subcommand: resolving a group and driving the build tool, and producing
// group listings for display. The cmd layer stays a thin cobra shell around
// these functions.
package commands
