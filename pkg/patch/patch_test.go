// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLines(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		testName string
		in       string
		expected string
	}{
		{"comments a bare key", "authorityKeyIdentifier=keyid,issuer", "#authorityKeyIdentifier=keyid,issuer"},
		{"keeps indentation", "  authorityKeyIdentifier=keyid,issuer", "  #authorityKeyIdentifier=keyid,issuer"},
		{"comments tab indented lines", "\tauthorityKeyIdentifier = keyid", "\t#authorityKeyIdentifier = keyid"},
		{"leaves other keys alone", "subjectKeyIdentifier=hash", "subjectKeyIdentifier=hash"},
		{"leaves longer identifiers alone", "authorityKeyIdentifierExtra=1", "authorityKeyIdentifierExtra=1"},
		{"leaves mid-line matches alone", "x = authorityKeyIdentifier", "x = authorityKeyIdentifier"},
		{"leaves empty lines alone", "", ""},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.testName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, CommentLines(testCase.in, "authorityKeyIdentifier"))
		})
	}
}

func TestCommentLinesWholeFile(t *testing.T) {
	t.Parallel()
	in := `[ v3_ca ]
subjectKeyIdentifier=hash
  authorityKeyIdentifier=keyid,issuer
basicConstraints = CA:true
`
	expected := `[ v3_ca ]
subjectKeyIdentifier=hash
  #authorityKeyIdentifier=keyid,issuer
basicConstraints = CA:true
`
	assert.Equal(t, expected, CommentLines(in, "authorityKeyIdentifier"))
}

func TestStripFlag(t *testing.T) {
	t.Parallel()
	anchor := "ca/dockerhost-key.pem"
	flag := "-extensions server"

	testCases := []struct {
		testName string
		in       string
		expected string
	}{
		{
			"removes the flag and its trailing space",
			"openssl req -config ca/openssl.cnf -new -key ca/dockerhost-key.pem -extensions server -out x",
			"openssl req -config ca/openssl.cnf -new -key ca/dockerhost-key.pem -out x",
		},
		{
			"removes the flag at the end of the line",
			"openssl req -key ca/dockerhost-key.pem -extensions server",
			"openssl req -key ca/dockerhost-key.pem ",
		},
		{
			"leaves lines without the anchor alone",
			"openssl req -config ca/openssl.cnf -extensions server -out y",
			"openssl req -config ca/openssl.cnf -extensions server -out y",
		},
		{
			"leaves unrelated lines alone",
			"echo done",
			"echo done",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.testName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, StripFlag(testCase.in, anchor, flag))
		})
	}
}

func TestStripFlagIsLineScoped(t *testing.T) {
	t.Parallel()
	in := `# sign the dockerhost key
openssl req -key ca/dockerhost-key.pem -extensions server -out req.pem
openssl req -key ca/other-key.pem -extensions server -out other.pem
`
	expected := `# sign the dockerhost key
openssl req -key ca/dockerhost-key.pem -out req.pem
openssl req -key ca/other-key.pem -extensions server -out other.pem
`
	assert.Equal(t, expected, StripFlag(in, "ca/dockerhost-key.pem", "-extensions server"))
}

func TestFilePatchMissingTarget(t *testing.T) {
	t.Parallel()
	p := &FilePatch{
		Path:      filepath.Join(t.TempDir(), "nope.cnf"),
		Backup:    filepath.Join(t.TempDir(), "nope.cnf.orig"),
		Transform: func(s string) string { return s },
	}

	applied, err := p.Apply()
	assert.NoError(t, err)
	assert.False(t, applied)
	assert.NoFileExists(t, p.Backup)
}

// A second run must never replace the backup with already-patched
// content.
func TestFilePatchBackupIsStable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "openssl.cnf.tmpl")
	backup := target + ".orig"
	original := "authorityKeyIdentifier=keyid,issuer\nbasicConstraints = CA:true\n"

	require.NoError(t, os.WriteFile(target, []byte(original), 0644))

	p := &FilePatch{
		Path:   target,
		Backup: backup,
		Transform: func(s string) string {
			return CommentLines(s, "authorityKeyIdentifier")
		},
	}

	applied, err := p.Apply()
	require.NoError(t, err)
	assert.True(t, applied)

	patched, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "#authorityKeyIdentifier=keyid,issuer\nbasicConstraints = CA:true\n", string(patched))

	backedUp, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, string(backedUp))

	// Rerun against the patched file
	applied, err = p.Apply()
	require.NoError(t, err)
	assert.True(t, applied)

	backedUp, err = os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, string(backedUp), "backup was overwritten by a rerun")
}

func TestFilePatchPreservesMode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "setup-dockerhost-cert.sh")

	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\n"), 0755))

	p := &FilePatch{
		Path:      target,
		Backup:    target + ".orig",
		Transform: func(s string) string { return s },
	}
	_, err := p.Apply()
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}
