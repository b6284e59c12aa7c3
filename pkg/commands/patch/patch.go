// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package patch

import (
	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/patch"
)

// Targets names the files the certificate patches operate on.
type Targets struct {
	Template       string
	TemplateBackup string
	Script         string
	ScriptBackup   string
}

// DefaultTargets returns the targets for the standard install layout.
func DefaultTargets() Targets {
	return Targets{
		Template:       constants.OpenSSLTemplate,
		TemplateBackup: constants.OpenSSLTemplateBackup,
		Script:         constants.DockerhostScript,
		ScriptBackup:   constants.DockerhostScriptBackup,
	}
}

// Certs applies the two post-install certificate patches.  The CA
// template ships an authorityKeyIdentifier line that newer openssl
// rejects when generating the self-signed CA, and the dockerhost cert
// script requests an extension section that no longer exists in the
// patched template.  Missing files mean the installer did not get far
// enough to need the patch, and are skipped.
func Certs(targets Targets) error {
	template := &patch.FilePatch{
		Path:   targets.Template,
		Backup: targets.TemplateBackup,
		Transform: func(content string) string {
			return patch.CommentLines(content, constants.OpenSSLBadKey)
		},
	}
	applied, err := template.Apply()
	if err != nil {
		return err
	}
	if applied {
		log.Infof("Patched %s", targets.Template)
	}

	script := &patch.FilePatch{
		Path:   targets.Script,
		Backup: targets.ScriptBackup,
		Transform: func(content string) string {
			return patch.StripFlag(content, constants.DockerhostAnchor, constants.DockerhostFlag)
		},
	}
	applied, err = script.Apply()
	if err != nil {
		return err
	}
	if applied {
		log.Infof("Patched %s", targets.Script)
	}

	return nil
}
