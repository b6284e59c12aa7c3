// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"os"
)

// FileIsTTY reports whether f is attached to a terminal.
func FileIsTTY(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, err
	}

	isCharDevice := fi.Mode()&os.ModeCharDevice != 0
	return isCharDevice, nil
}
