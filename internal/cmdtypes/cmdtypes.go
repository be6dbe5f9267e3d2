// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config, internal/cmd/view).
package cmdtypes

import (
	"github.com/sitefinity/sfdesigner/internal/config"
	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file. It is never nil after startup.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Output is the raw --output flag value.
	Output string

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = serrors.ExitSuccess
	ExitGeneralError    = serrors.ExitGeneralError
	ExitValidationError = serrors.ExitValidationError
	ExitNotFound        = serrors.ExitNotFound
	ExitUsage           = serrors.ExitUsage
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = serrors.ExitError

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
