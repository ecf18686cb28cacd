package cmd

import (
	"errors"

	oerrors "github.com/provide-io/plating/internal/errors"
)

// exitCode maps an error to the process exit code for the command layer.
func exitCode(err error) int {
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrCollision):
		return oerrors.ExitCollision
	case errors.Is(err, oerrors.ErrRender):
		return oerrors.ExitRenderError
	case errors.Is(err, oerrors.ErrDiscovery), errors.Is(err, oerrors.ErrAssetMissing):
		return oerrors.ExitNotFound
	default:
		return oerrors.ExitGeneralError
	}
}

// exitWith wraps err so main exits with the mapped code. printed marks the
// error as already reported to the user.
func exitWith(err error, printed bool) error {
	return &oerrors.ExitError{Code: exitCode(err), Err: err, Printed: printed}
}
