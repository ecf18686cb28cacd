package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
	"github.com/provide-io/plating/internal/plate"
)

// NewAdornCmd creates the adorn command.
func NewAdornCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adorn",
		Short: "Compile component examples into runnable projects",
		Long: `Compile every bundle's examples into runnable project folders.

Flat examples become isolated single-component projects with a generated
provider block. Scenario directories shared across bundles are aggregated
into cross-component integration projects. A name or fixture collision
within a scenario aborts the run before any grouped output is written.

Examples:
  # Compile examples for one package
  plating adorn --package ./pkg/pyvider-components`,
		RunE: runAdorn,
	}
}

func runAdorn(cmd *cobra.Command, args []string) error {
	result, err := plate.Adorn(cmd.Context(), pipelineOptions())
	if err != nil {
		return exitWith(err, false)
	}

	if len(result.Errors) > 0 {
		for _, compileErr := range result.Errors {
			output.Error(compileErr.Error())
		}
		err := fmt.Errorf("%d bundle(s) failed to compile", len(result.Errors))
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}
	return nil
}
