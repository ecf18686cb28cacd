package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/provide-io/plating/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, oerrors.ExitSuccess},
		{"plain error", fmt.Errorf("boom"), oerrors.ExitGeneralError},
		{"render error", fmt.Errorf("bundle x: %w", oerrors.ErrRender), oerrors.ExitRenderError},
		{"collision", oerrors.NewCollisionError("full_stack", "component", "net", nil), oerrors.ExitCollision},
		{"discovery", oerrors.Wrap(oerrors.ErrDiscovery, "walk failed"), oerrors.ExitNotFound},
		{"missing asset", oerrors.Wrap(oerrors.ErrAssetMissing, "no template"), oerrors.ExitNotFound},
		{
			"explicit exit error wins",
			&oerrors.ExitError{Code: oerrors.ExitValidateError, Err: fmt.Errorf("x")},
			oerrors.ExitValidateError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitWith(t *testing.T) {
	err := exitWith(fmt.Errorf("bundle x: %w", oerrors.ErrRender), true)

	exitErr, ok := err.(*oerrors.ExitError)
	assert.True(t, ok)
	assert.Equal(t, oerrors.ExitRenderError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.Contains(t, exitErr.Error(), "bundle x")
}
