// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	CliVersion = "0.2.0"

	UserConfigDir                         = ".xcatctl"
	UserConfigDefaults                    = "defaults.yaml"
	UserConfigDefaultsEnvironmentVariable = "XCATCTL_DEFAULTS"

	// Exit codes for fatal preflight failures.  Everything after
	// preflight is best-effort and never sets a distinct code.
	ExitCodeNotRoot          = 2
	ExitCodeNoPackageManager = 3

	// Any installed package whose lowercased name starts with this
	// prefix belongs to the product and is removed during cleanup.
	ProductPackagePrefix = "xcat"

	// Meta-package left behind by very old installs.  Removal failure
	// is ignored; it is usually already gone.
	LegacyMetaPackage = "xCAT"

	// Repositories the installer needs on Enterprise Linux 9.
	RepoCodeReadyBuilder = "crb"
	RepoEpel             = "epel"

	// Installer payload locations.  The bundle ships with the tool and
	// is copied to a scratch location before it runs.
	InstallerBundleDir = "/usr/share/xcatctl/go-xcat"
	InstallerScratch   = "/tmp/xcatctl/go-xcat"
	InstallerScript    = "go-xcat"

	// Files patched after installation, with their one-time backups.
	OpenSSLTemplate        = "/opt/xcat/share/xcat/ca/openssl.cnf.tmpl"
	OpenSSLTemplateBackup  = "/opt/xcat/share/xcat/ca/openssl.cnf.tmpl.orig"
	DockerhostScript       = "/opt/xcat/share/xcat/scripts/setup-dockerhost-cert.sh"
	DockerhostScriptBackup = "/opt/xcat/share/xcat/scripts/setup-dockerhost-cert.sh.orig"

	// Patch A comments out this key wherever it starts a line in the
	// CA template.  Newer openssl rejects it for self-signed CAs.
	OpenSSLBadKey = "authorityKeyIdentifier"

	// Patch B removes this flag pair from the request line that signs
	// the dockerhost key.
	DockerhostAnchor = "ca/dockerhost-key.pem"
	DockerhostFlag   = "-extensions server"

	// xCAT environment.
	XcatProfile = "/etc/profile.d/xcat.sh"
	XcatBinDir  = "/opt/xcat/bin"
	XcatSbinDir = "/opt/xcat/sbin"

	// xCAT daemon tooling, discovered on the search path at runtime.
	XcatConfigCommand  = "xcatconfig"
	XcatRestartCommand = "restartxcatd"
	XcatStatusCommand  = "lsxcatd"
	XcatServiceUnit    = "xcatd.service"
	XcatServiceName    = "xcatd"

	DefaultVersion = "latest"
)

// DefaultPrerequisites are installed before the third-party installer
// runs, if not already present.
var DefaultPrerequisites = []string{
	"wget",
	"which",
	"tar",
	"bzip2",
	"perl-Data-Dumper",
	"net-tools",
}

// DefaultRepositories are enabled before the third-party installer runs.
var DefaultRepositories = []string{
	RepoCodeReadyBuilder,
	RepoEpel,
}
