// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package patch

import (
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/file"
)

// CommentLines inserts a '#' at the indentation point of every line
// whose first non-whitespace token is key.  The token must be followed
// by '=', whitespace, or the end of the line so that longer identifiers
// sharing the prefix are left alone.  All other lines are returned
// byte for byte.
func CommentLines(content string, key string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		rest := trimmed[len(key):]
		if rest != "" && rest[0] != '=' && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + "#" + trimmed
	}
	return strings.Join(lines, "\n")
}

// StripFlag removes every occurrence of flag, along with the run of
// spaces that follows it, from lines containing the anchor substring.
// Lines without the anchor are untouched even if they contain the flag.
func StripFlag(content string, anchor string, flag string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(flag) + " *")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.Contains(line, anchor) {
			continue
		}
		lines[i] = re.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// FilePatch rewrites one file in place through Transform, taking a
// one-time backup first.
type FilePatch struct {
	Path      string
	Backup    string
	Transform func(string) string
}

// Apply patches the target file.  A missing target is not an error;
// it means the product is not installed the way this patch expects,
// so the patch is skipped.  Returns true if the file was patched.
func (p *FilePatch) Apply() (bool, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("File %s does not exist, skipping patch", p.Path)
			return false, nil
		}
		return false, err
	}

	created, err := file.BackupOnce(p.Path, p.Backup)
	if err != nil {
		return false, err
	}
	if created {
		log.Debugf("Backed up %s to %s", p.Path, p.Backup)
	}

	content, err := os.ReadFile(p.Path)
	if err != nil {
		return false, err
	}

	patched := p.Transform(string(content))
	err = os.WriteFile(p.Path, []byte(patched), info.Mode().Perm())
	if err != nil {
		return false, err
	}
	return true, nil
}
