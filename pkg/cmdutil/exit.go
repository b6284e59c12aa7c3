// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	"errors"
	"fmt"
)

// ExitError is returned by commands that must terminate the process
// with a specific exit code.  main unwraps it and passes the code to
// os.Exit.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Exitf creates an ExitError with a formatted message.
func Exitf(code int, format string, args ...any) error {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ExitCode extracts the exit code to use for err.  Errors that are not
// ExitErrors map to 1, and nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
