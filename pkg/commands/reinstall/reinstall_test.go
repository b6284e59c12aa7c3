// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reinstall

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcat2/xcatctl/pkg/cmdutil"
	"github.com/xcat2/xcatctl/pkg/commands/patch"
	"github.com/xcat2/xcatctl/pkg/config/types"
	"github.com/xcat2/xcatctl/pkg/constants"
	"github.com/xcat2/xcatctl/pkg/unix"
	"github.com/xcat2/xcatctl/pkg/unix/fake"
)

const listCommand = "rpm -qa --qf %{NAME}\\n"

// testOptions builds Options that keep the whole procedure inside a
// temp directory: the installer bundle is missing (its failure is
// tolerated by design), the patch targets do not exist yet, and the
// profile is absent so PATH stays untouched.
func testOptions(t *testing.T, runner unix.Runner) Options {
	dir := t.TempDir()
	return Options{
		Config: &types.Config{
			Version:         "latest",
			Prerequisites:   []string{"wget"},
			Repositories:    []string{"crb", "epel"},
			InstallerBundle: filepath.Join(dir, "go-xcat"),
		},
		Version: "latest",
		Runner:  runner,
		Euid:    0,
		PatchTargets: patch.Targets{
			Template:       filepath.Join(dir, "openssl.cnf.tmpl"),
			TemplateBackup: filepath.Join(dir, "openssl.cnf.tmpl.orig"),
			Script:         filepath.Join(dir, "setup-dockerhost-cert.sh"),
			ScriptBackup:   filepath.Join(dir, "setup-dockerhost-cert.sh.orig"),
		},
		Profile: filepath.Join(dir, "xcat.sh"),
	}
}

func TestReinstallNotRoot(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")

	opts := testOptions(t, runner)
	opts.Euid = 1000
	err := Reinstall(opts)
	require.Error(t, err)

	var ee *cmdutil.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, constants.ExitCodeNotRoot, ee.Code)
	assert.Empty(t, runner.Calls, "non-root run performed an action")
}

func TestReinstallNoPackageManager(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner()

	err := Reinstall(testOptions(t, runner))
	require.Error(t, err)

	var ee *cmdutil.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, constants.ExitCodeNoPackageManager, ee.Code)
	assert.Empty(t, runner.Calls, "run without a package manager performed an action")
}

func TestReinstall(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\nxCAT-server\nxcat-core\nXCAT-genesis\n"}

	err := Reinstall(testOptions(t, runner))
	require.NoError(t, err)

	assert.Equal(t, []string{
		listCommand,
		"dnf remove -y xCAT-server xcat-core XCAT-genesis",
		"dnf remove -y xCAT",
		"rpm -q wget",
		"dnf config-manager --set-enabled crb epel",
	}, runner.CallLines())
}

func TestReinstallNothingToClean(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\nsystemd\n"}

	err := Reinstall(testOptions(t, runner))
	require.NoError(t, err)

	// Only the legacy meta-package removal remains
	var removes []string
	for _, line := range runner.CallLines() {
		if strings.Contains(line, "remove") {
			removes = append(removes, line)
		}
	}
	assert.Equal(t, []string{"dnf remove -y xCAT"}, removes)
}

// The batch removal is deliberately unguarded, unlike the legacy
// meta-package removal.
func TestReinstallBatchRemovalFailureAborts(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "xcat-core\n"}
	runner.Results["dnf remove -y xcat-core"] = fake.Result{Err: errors.New("exit status 1"), Stderr: "transaction failed"}

	err := Reinstall(testOptions(t, runner))
	require.Error(t, err)

	var ee *cmdutil.ExitError
	assert.False(t, errors.As(err, &ee), "cleanup failure must not map to a preflight exit code")
}

func TestReinstallLegacyRemovalFailureIgnored(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\n"}
	runner.Results["dnf remove -y xCAT"] = fake.Result{Err: errors.New("exit status 1"), Stderr: "No match for argument: xCAT"}

	err := Reinstall(testOptions(t, runner))
	assert.NoError(t, err)
}

func TestReinstallPrerequisiteInstall(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\n"}
	runner.Results["rpm -q wget"] = fake.Result{Err: errors.New("package wget is not installed")}

	err := Reinstall(testOptions(t, runner))
	require.NoError(t, err)
	assert.Contains(t, runner.CallLines(), "dnf install -y wget")
}

// Repository enablement is best effort.
func TestReinstallRepoFailureTolerated(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\n"}
	runner.Results["dnf config-manager --set-enabled crb epel"] = fake.Result{Err: errors.New("exit status 1")}

	err := Reinstall(testOptions(t, runner))
	assert.NoError(t, err)
}

// The procedure patches the certificate files it was given, with a
// one-time backup.
func TestReinstallPatchesCerts(t *testing.T) {
	t.Parallel()
	runner := fake.NewFakeRunner("dnf")
	runner.Results[listCommand] = fake.Result{Stdout: "bash\n"}

	opts := testOptions(t, runner)
	original := "  authorityKeyIdentifier=keyid,issuer\n"
	require.NoError(t, os.WriteFile(opts.PatchTargets.Template, []byte(original), 0644))

	require.NoError(t, Reinstall(opts))

	patched, err := os.ReadFile(opts.PatchTargets.Template)
	require.NoError(t, err)
	assert.Equal(t, "  #authorityKeyIdentifier=keyid,issuer\n", string(patched))

	backedUp, err := os.ReadFile(opts.PatchTargets.TemplateBackup)
	require.NoError(t, err)
	assert.Equal(t, original, string(backedUp))
}
