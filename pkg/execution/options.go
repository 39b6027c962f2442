package execution

import "strings"

// OptionSet is one of the closed set of flag bundles a subcommand can
// carry. Each variant applies its own flags to a command argument list; the
// unexported method keeps the set closed to this package.
type OptionSet interface {
	apply(args []string) []string
}

// Apply appends every option set's flags to args, in order
func Apply(args []string, opts ...OptionSet) []string {
	for _, opt := range opts {
		args = opt.apply(args)
	}
	return args
}

// FeatureOptions carries the feature-selection flags shared by every
// build-like subcommand
type FeatureOptions struct {
	Features          []string
	AllFeatures       bool
	NoDefaultFeatures bool
}

func (o FeatureOptions) apply(args []string) []string {
	if o.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if o.AllFeatures {
		args = append(args, "--all-features")
	}
	if len(o.Features) > 0 {
		args = append(args, "--features", strings.Join(o.Features, ","))
	}
	return args
}

// BuildOptions carries the common flags like --release
type BuildOptions struct {
	Release bool
}

func (o BuildOptions) apply(args []string) []string {
	if o.Release {
		args = append(args, "--release")
	}
	return args
}

// FixOptions carries clippy's fix flags
type FixOptions struct {
	Fix        bool
	AllowDirty bool
}

func (o FixOptions) apply(args []string) []string {
	if o.Fix {
		args = append(args, "--fix")
	}
	if o.AllowDirty {
		args = append(args, "--allow-dirty")
	}
	return args
}
