package execution

import (
	stderrors "errors"
	"os"
	"os/exec"
	"sort"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/crategroups/crategroups/pkg/logging"
	"github.com/crategroups/crategroups/pkg/types"
)

// Runner constructs and spawns build-tool invocations for a resolved
// package set
type Runner struct {
	// Cargo overrides the binary name; empty means "cargo" from PATH
	Cargo string

	// Dir is the working directory for the spawned process
	Dir string
}

// Arguments builds the full argument list for a subcommand: option-set
// flags first, then one -p selection per package. Package names are sorted
// so repeated invocations are byte-identical.
func Arguments(subcommand string, packages []types.Package, opts ...OptionSet) []string {
	args := []string{subcommand}
	args = Apply(args, opts...)

	names := types.Names(packages)
	sort.Strings(names)
	for _, name := range names {
		args = append(args, "-p", name)
	}
	return args
}

// Run executes the subcommand against the package set with inherited stdio
// and returns the child's exit code. An empty package set is a no-op
// success; the resolver already decided nothing needs building.
func (r *Runner) Run(subcommand string, packages []types.Package, opts ...OptionSet) (int, error) {
	logger := logging.GetLogger("execution.runner")

	if len(packages) == 0 {
		logger.Info().
			Str("subcommand", subcommand).
			Msg("Group resolved to no packages, nothing to do")
		return 0, nil
	}

	cargo := r.Cargo
	if cargo == "" {
		cargo = "cargo"
	}

	bin, err := exec.LookPath(cargo)
	if err != nil {
		return 1, errors.Wrapf(err, errors.ErrToolNotFound, "%s not found in PATH", cargo)
	}

	args := Arguments(subcommand, packages, opts...)
	logging.LogCommand(bin, args)

	cmd := exec.Command(bin, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			// The tool ran and failed; its exit code is the result
			return exitErr.ExitCode(), nil
		}
		return 1, errors.Wrap(err, errors.ErrToolExec, "failed to run build tool").
			WithDetail("binary", bin)
	}

	return 0, nil
}
