// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcat2/xcatctl/pkg/constants"
)

func testTargets(t *testing.T) Targets {
	dir := t.TempDir()
	return Targets{
		Template:       filepath.Join(dir, "openssl.cnf.tmpl"),
		TemplateBackup: filepath.Join(dir, "openssl.cnf.tmpl.orig"),
		Script:         filepath.Join(dir, "setup-dockerhost-cert.sh"),
		ScriptBackup:   filepath.Join(dir, "setup-dockerhost-cert.sh.orig"),
	}
}

func TestCerts(t *testing.T) {
	t.Parallel()
	targets := testTargets(t)

	template := "[ v3_ca ]\nauthorityKeyIdentifier=keyid,issuer\n"
	script := "openssl ca -config ca/openssl.cnf -out ca/dockerhost-key.pem -extensions server \n"
	require.NoError(t, os.WriteFile(targets.Template, []byte(template), 0644))
	require.NoError(t, os.WriteFile(targets.Script, []byte(script), 0755))

	require.NoError(t, Certs(targets))

	patched, err := os.ReadFile(targets.Template)
	require.NoError(t, err)
	assert.Equal(t, "[ v3_ca ]\n#authorityKeyIdentifier=keyid,issuer\n", string(patched))

	patched, err = os.ReadFile(targets.Script)
	require.NoError(t, err)
	assert.Equal(t, "openssl ca -config ca/openssl.cnf -out ca/dockerhost-key.pem \n", string(patched))

	backedUp, err := os.ReadFile(targets.TemplateBackup)
	require.NoError(t, err)
	assert.Equal(t, template, string(backedUp))

	backedUp, err = os.ReadFile(targets.ScriptBackup)
	require.NoError(t, err)
	assert.Equal(t, script, string(backedUp))
}

func TestCertsMissingFilesSkipped(t *testing.T) {
	t.Parallel()
	targets := testTargets(t)

	require.NoError(t, Certs(targets))

	_, err := os.Stat(targets.TemplateBackup)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(targets.ScriptBackup)
	assert.True(t, os.IsNotExist(err))
}

func TestCertsRerunKeepsFirstBackup(t *testing.T) {
	t.Parallel()
	targets := testTargets(t)

	template := "authorityKeyIdentifier=keyid,issuer\n"
	require.NoError(t, os.WriteFile(targets.Template, []byte(template), 0644))

	require.NoError(t, Certs(targets))
	require.NoError(t, Certs(targets))

	patched, err := os.ReadFile(targets.Template)
	require.NoError(t, err)
	assert.Equal(t, "#authorityKeyIdentifier=keyid,issuer\n", string(patched))

	backedUp, err := os.ReadFile(targets.TemplateBackup)
	require.NoError(t, err)
	assert.Equal(t, template, string(backedUp), "second run overwrote the backup")
}

func TestDefaultTargets(t *testing.T) {
	t.Parallel()
	targets := DefaultTargets()
	assert.Equal(t, constants.OpenSSLTemplate, targets.Template)
	assert.Equal(t, constants.DockerhostScript, targets.Script)
}
