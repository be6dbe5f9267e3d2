package cmdutil

import (
	"errors"
	"fmt"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/config"
	serrors "github.com/sitefinity/sfdesigner/internal/errors"
	"github.com/sitefinity/sfdesigner/internal/output"
)

// ParseOutputFormat parses the --output flag.
func ParseOutputFormat(raw string) (output.Format, error) {
	format, ok := output.ParseFormat(raw)
	if !ok {
		return "", serrors.NewInvalidArgumentError("output",
			fmt.Sprintf("unknown output format %q (valid: %v)", raw, output.ValidFormats()))
	}
	return format, nil
}

// PrintValidationError prints config validation errors one field per line.
// Other errors fall back to the standard key-value log format.
func PrintValidationError(msg string, err error) {
	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		output.Error(msg)
		for _, e := range validationErrs {
			output.Error(e.Message, "field", e.Field)
		}
		return
	}
	output.Error(msg, "error", err)
}

// Fail reports err on stderr and wraps it in an ExitError carrying the exit
// code derived from its sentinel. Detail errors keep their multi-line layout.
func Fail(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *cmdtypes.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var detail *serrors.DetailError
	if errors.As(err, &detail) {
		output.Error(detail.Message, detailKeyvals(detail)...)
	} else {
		output.Error(err.Error())
	}

	return &cmdtypes.ExitError{
		Code:    serrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

func detailKeyvals(d *serrors.DetailError) []interface{} {
	var kv []interface{}
	if d.Location != "" {
		kv = append(kv, "location", d.Location)
	}
	if d.Field != "" {
		kv = append(kv, "field", d.Field)
	}
	if d.Hint != "" {
		kv = append(kv, "hint", d.Hint)
	}
	return kv
}
