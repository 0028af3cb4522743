package buildrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Sentinel errors for runner configuration.
var (
	// ErrNoSteps indicates a runner with nothing to execute.
	ErrNoSteps = errors.New("buildrun: at least one step is required")
)

// Banner is printed exactly once after every step exits zero.
const Banner = "🍰 All done 🍰"

// Step is one subprocess invocation of the packaging pipeline.
type Step struct {
	// Name labels the step in logs ("pre-validate", "build", ...).
	Name string
	// Path is the executable to run.
	Path string
	// Args are its arguments.
	Args []string
}

// ExecFunc runs a step and returns its exit code. It exists so tests can
// observe sequencing without spawning processes.
type ExecFunc func(ctx context.Context, step Step) int

// Runner executes steps in order, stopping at the first nonzero exit
// code and propagating it unchanged. Later steps are never invoked after
// a failure.
type Runner struct {
	// Steps run in slice order.
	Steps []Step
	// Exec runs one step; nil selects the os/exec implementation.
	Exec ExecFunc
	// Out receives step output and the success banner; nil selects stdout.
	Out io.Writer
	// Log receives step-level progress; nil disables logging.
	Log *zap.Logger
}

// DefaultSteps returns the canonical packaging pipeline: pre-build
// validation, the build itself, post-build validation. Scripts resolve
// relative to the working directory.
func DefaultSteps() []Step {
	return []Step{
		{Name: "pre-validate", Path: "scripts/validate.sh", Args: []string{"--pre"}},
		{Name: "build", Path: "scripts/build.sh"},
		{Name: "post-validate", Path: "scripts/validate.sh", Args: []string{"--post"}},
	}
}

// Run executes the pipeline and returns the exit code to propagate: the
// first failing step's code, or zero with the banner printed once.
// Returns ErrNoSteps for an empty pipeline.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if len(r.Steps) == 0 {
		return 1, ErrNoSteps
	}
	execFn := r.Exec
	if execFn == nil {
		execFn = r.execCommand
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	for _, step := range r.Steps {
		r.logInfo("running step", zap.String("step", step.Name))
		if code := execFn(ctx, step); code != 0 {
			r.logInfo("step failed", zap.String("step", step.Name), zap.Int("exit_code", code))
			return code, nil
		}
	}
	fmt.Fprintln(out, Banner)
	return 0, nil
}

// execCommand is the real ExecFunc: spawn the step and map its outcome to
// an exit code. A start failure (missing script, permission) maps to 127.
func (r *Runner) execCommand(ctx context.Context, step Step) int {
	cmd := exec.CommandContext(ctx, step.Path, step.Args...)
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		r.logInfo("step could not start", zap.String("step", step.Name), zap.Error(err))
		return 127
	}
	return 0
}

func (r *Runner) logInfo(msg string, fields ...zap.Field) {
	if r.Log != nil {
		r.Log.Info(msg, fields...)
	}
}
