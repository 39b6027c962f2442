package types

// Package represents a buildable unit of code in the workspace
type Package struct {
	// Name is the package name, unique within the workspace
	Name string

	// Path is the package directory relative to the workspace root,
	// forward-slash separated, with no leading "./"
	Path string

	// Dependencies holds the names of the package's direct dependencies.
	// Names that do not refer to workspace members are ignored by the
	// group resolver.
	Dependencies []string
}

// Names returns the package names in input order
func Names(packages []Package) []string {
	names := make([]string, len(packages))
	for i, pkg := range packages {
		names[i] = pkg.Name
	}
	return names
}
