// Package main is the entry point for the sfdesigner CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sitefinity/sfdesigner/internal/cmd"
	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *serrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag and argument errors from cobra
		fmt.Fprintln(os.Stderr, err)
		os.Exit(serrors.ExitCodeFromError(err))
	}
}
