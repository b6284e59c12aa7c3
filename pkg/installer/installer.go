// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/file"
	"github.com/xcat2/xcatctl/pkg/unix"
)

// Options configures one run of the go-xcat installer.
type Options struct {
	// BundleDir is the directory holding the installer payload.
	BundleDir string

	// ScratchDir is where the payload is staged before running.  Any
	// prior copy is replaced.
	ScratchDir string

	// Version is the xCAT version selector passed to the installer.
	Version string

	Runner unix.Runner
}

// ValidateVersion checks a version selector.  "latest" and "devel"
// are symbolic selectors the installer understands; anything else has
// to be a semantic version.
func ValidateVersion(selector string) error {
	if selector == "latest" || selector == "devel" {
		return nil
	}
	_, err := semver.NewVersion(selector)
	if err != nil {
		return fmt.Errorf("%s is not a valid xCAT version selector: %v", selector, err)
	}
	return nil
}

// Install stages the go-xcat payload in the scratch directory and runs
// it.  The returned error is advisory: installer failures are commonly
// caused by certificate problems that the post-install patches repair,
// so callers log it and keep going.
func Install(opts Options) error {
	_, err := os.Stat(opts.BundleDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("installer bundle %s does not exist", opts.BundleDir)
		}
		return err
	}

	log.Debugf("Staging installer from %s to %s", opts.BundleDir, opts.ScratchDir)
	err = file.CopyDir(opts.BundleDir, opts.ScratchDir)
	if err != nil {
		return fmt.Errorf("could not stage installer: %v", err)
	}

	script := filepath.Join(opts.ScratchDir, constants.InstallerScript)
	err = os.Chmod(script, 0755)
	if err != nil {
		return err
	}

	stdout, stderr, err := opts.Runner.Run(script, "--xcat-version", opts.Version, "install", "--yes")
	if stdout != "" {
		log.Debug(stdout)
	}
	if err != nil {
		return fmt.Errorf("go-xcat failed: %v: %s", err, stderr)
	}
	return nil
}
