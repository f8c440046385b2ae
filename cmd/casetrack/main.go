// Package main provides the casetrack CLI, the command-line surface over the
// in-memory supervision-tracking stores.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "casetrack:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI exit code convention: user errors
// (bad input, missing records, ownership) exit 1, everything else exits 2.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotOwner):
		return exitUserError
	default:
		return exitSysError
	}
}
