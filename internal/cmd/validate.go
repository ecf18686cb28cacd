package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
	"github.com/provide-io/plating/internal/plate"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate compiled examples with the provisioning tool",
		Long: `Run the provisioning tool against every compiled example project.

Each project under the examples output directory is initialized without a
backend and validated. The first failing step of a project stops that
project; remaining projects still run.

Examples:
  # Validate everything adorn produced
  plating validate

  # Use a different provisioning binary
  plating validate --terraform tofu`,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := plate.Validate(cmd.Context(), pipelineOptions())
	if err != nil {
		return exitWith(err, false)
	}

	failed := result.Failed()
	if len(failed) == 0 {
		output.Print(output.FormatSummary(fmt.Sprintf(
			"%d example project(s) validated", len(result.Results))) + "\n")
		return nil
	}

	for _, res := range result.Results {
		if res.OK() {
			continue
		}
		for _, step := range res.Steps {
			if step.Err == nil {
				continue
			}
			output.Error("validation failed",
				"dir", res.Dir,
				"step", step.Name,
				"output", step.Output,
			)
		}
	}
	err = fmt.Errorf("%d of %d example project(s) failed validation", len(failed), len(result.Results))
	return &oerrors.ExitError{Code: oerrors.ExitValidateError, Err: err, Printed: true}
}
