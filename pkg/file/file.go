// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package file

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xcat2/xcatctl/pkg/constants"
)

// GetXcatctlDir gets the absolute path of ~/.xcatctl dir
func GetXcatctlDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, constants.UserConfigDir), nil
}

// AbsDir returns the absolute directory of the string, expanding ~/ prefix if needed.
func AbsDir(dir string) (string, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
	}

	return filepath.Abs(dir)
}

// Copy copies a regular file, preserving its mode.
func Copy(src string, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// BackupOnce copies src to backup unless backup already exists.  The
// backup is taken before the first patch, so repeated runs must never
// replace it with already-patched content.  Returns true if a backup
// was created by this call.
func BackupOnce(src string, backup string) (bool, error) {
	_, err := os.Stat(backup)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	err = Copy(src, backup)
	if err != nil {
		return false, err
	}
	return true, nil
}

// CopyDir recursively copies a directory tree, preserving file modes.
// An existing destination tree is removed first.
func CopyDir(src string, dst string) error {
	err := os.RemoveAll(dst)
	if err != nil {
		return err
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return Copy(path, target)
	})
}
