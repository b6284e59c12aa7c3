// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reinstall

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/patch"
	"github.com/xcat2/xcatctl/pkg/config/types"
	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/installer"
	"github.com/xcat2/xcatctl/pkg/rpm"
	"github.com/xcat2/xcatctl/pkg/service"
	"github.com/xcat2/xcatctl/pkg/unix"
	"github.com/xcat2/xcatctl/pkg/util/logutils"
)

// Options carries everything the reinstall procedure needs.  The
// runner and euid are injected so the whole procedure can run against
// fakes.
type Options struct {
	Config  *types.Config
	Version string
	Runner  unix.Runner
	Euid    int

	// PatchTargets overrides the files the certificate patches
	// operate on.  The zero value means the standard install layout.
	PatchTargets patch.Targets

	// Profile overrides the environment file consulted before the
	// service stages.  Empty means the standard install layout.
	Profile string
}

// Reinstall removes any installed xCAT packages, reinstalls the stack
// with go-xcat, patches the certificate configuration the installer
// leaves behind, and restarts xcatd.  Only the preflight checks are
// fatal with distinct exit codes; the installer and the service
// stages are tolerated because their usual failure mode is the very
// certificate problem the patches fix.
func Reinstall(opts Options) error {
	// Preflight.  Nothing below may run, or mutate anything, unless
	// both checks pass.
	if opts.Euid != 0 {
		return cmdutil.Exitf(constants.ExitCodeNotRoot, "xcatctl reinstall must be run as root")
	}

	mgr, err := rpm.Detect(opts.Runner)
	if err != nil {
		return cmdutil.Exitf(constants.ExitCodeNoPackageManager, "%v", err)
	}
	log.Infof("Using package manager %s", mgr.Tool())

	err = cleanup(mgr)
	if err != nil {
		return err
	}

	for _, name := range opts.Config.Prerequisites {
		err = mgr.Ensure(name)
		if err != nil {
			return err
		}
	}

	err = mgr.EnableRepos(opts.Config.Repositories...)
	if err != nil {
		log.Errorf("Could not enable repositories: %v", err)
	}

	err = logutils.WaitFor(logutils.Info, &logutils.Waiter{
		Message: fmt.Sprintf("Installing xCAT %s", opts.Version),
		WaitFunction: func(interface{}) error {
			return installer.Install(installer.Options{
				BundleDir:  opts.Config.InstallerBundle,
				ScratchDir: constants.InstallerScratch,
				Version:    opts.Version,
				Runner:     opts.Runner,
			})
		},
	})
	if err != nil {
		log.Errorf("Installer did not succeed: %v", err)
		log.Info("Continuing anyway, the certificate patches may repair the installation")
	}

	targets := opts.PatchTargets
	if targets == (patch.Targets{}) {
		targets = patch.DefaultTargets()
	}
	err = patch.Certs(targets)
	if err != nil {
		return err
	}

	ctl := service.NewController(opts.Runner)
	if opts.Profile != "" {
		ctl.Profile = opts.Profile
	}
	ctl.SetupEnv()
	ctl.Reinit()
	ctl.Restart()
	ctl.Status()

	return nil
}

// cleanup removes every installed package belonging to the product,
// then the legacy meta-package.  The legacy removal is expected to
// fail on systems that never had it, so its error is swallowed.  The
// batch removal is not guarded: a failure there leaves the system in
// a state the installer cannot be trusted with.
func cleanup(mgr *rpm.Manager) error {
	names, err := mgr.ListInstalled()
	if err != nil {
		return err
	}

	var matched []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), constants.ProductPackagePrefix) {
			matched = append(matched, name)
		}
	}

	if len(matched) > 0 {
		log.Infof("Removing packages: %s", strings.Join(matched, " "))
		err = mgr.Remove(matched...)
		if err != nil {
			return err
		}
	} else {
		log.Info("No xCAT packages installed")
	}

	err = mgr.Remove(constants.LegacyMetaPackage)
	if err != nil {
		log.Debugf("Legacy package %s not removed: %v", constants.LegacyMetaPackage, err)
	}

	return nil
}
