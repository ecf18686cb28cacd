package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/provide-io/plating/internal/errors"
	"github.com/provide-io/plating/internal/output"
	"github.com/provide-io/plating/internal/plate"
)

// NewPlateCmd creates the plate command.
func NewPlateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plate",
		Short: "Render component documentation",
		Long: `Render documentation for every discovered component bundle.

Each bundle's main template is composed with its examples, schema fragment,
and partials, then written under the docs output directory together with a
regenerated capability index and navigation manifest.

Examples:
  # Document one package
  plating plate --package ./pkg/pyvider-components

  # Document every installed package under the configured sites
  plating plate`,
		RunE: runPlate,
	}
}

func runPlate(cmd *cobra.Command, args []string) error {
	result, err := plate.Plate(cmd.Context(), pipelineOptions())
	if err != nil {
		return exitWith(err, false)
	}

	if len(result.Errors) > 0 {
		for _, renderErr := range result.Errors {
			output.Error(renderErr.Error())
		}
		err := fmt.Errorf("%d bundle(s) failed to render", len(result.Errors))
		return &oerrors.ExitError{Code: oerrors.ExitRenderError, Err: err, Printed: true}
	}
	return nil
}
