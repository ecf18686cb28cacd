// Package provision wraps the external provisioning CLI used to validate
// compiled examples. plating only shells out; it never implements the tool.
package provision

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Runner invokes the provisioning binary against compiled example projects.
type Runner struct {
	// Binary is the tool to invoke, resolved via PATH when not absolute.
	Binary string
}

// NewRunner creates a runner for the given binary; empty defaults to
// "terraform".
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = "terraform"
	}
	return &Runner{Binary: binary}
}

// StepResult records one tool invocation.
type StepResult struct {
	// Name is the subcommand that ran (init, validate).
	Name string

	// Output is the combined stdout/stderr.
	Output string

	// Duration is the wall-clock run time.
	Duration time.Duration

	// Err is the invocation failure, if any.
	Err error
}

// Result aggregates the steps run against one example directory.
type Result struct {
	// Dir is the example project directory.
	Dir string

	// Steps holds per-invocation results in execution order.
	Steps []StepResult
}

// OK reports whether every step succeeded.
func (r *Result) OK() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Validate runs `init` then `validate` in dir, stopping at the first
// failing step. The caller owns timeout policy via ctx.
func (r *Runner) Validate(ctx context.Context, dir string) *Result {
	result := &Result{Dir: dir}

	for _, args := range [][]string{
		{"init", "-backend=false", "-input=false", "-no-color"},
		{"validate", "-no-color"},
	} {
		step := r.run(ctx, dir, args)
		result.Steps = append(result.Steps, step)
		if step.Err != nil {
			break
		}
	}
	return result
}

// run executes one tool invocation with combined output capture.
func (r *Runner) run(ctx context.Context, dir string, args []string) StepResult {
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	return StepResult{
		Name:     args[0],
		Output:   buf.String(),
		Duration: time.Since(start),
		Err:      err,
	}
}
