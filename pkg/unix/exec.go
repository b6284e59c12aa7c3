// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package unix

import (
	"bytes"
	"os/exec"
)

type CmdExecutor struct {
	*exec.Cmd
	StdOutBuf bytes.Buffer
	StdErrBuf bytes.Buffer
}

// NewCmdExecutor creates a new CmdExecutor
func NewCmdExecutor(cmdName string, args ...string) *CmdExecutor {
	e := CmdExecutor{
		Cmd:       exec.Command(cmdName, args...),
		StdOutBuf: bytes.Buffer{},
		StdErrBuf: bytes.Buffer{},
	}
	e.Cmd.Stdout = &e.StdOutBuf
	e.Cmd.Stderr = &e.StdErrBuf
	return &e
}

// Runner executes external commands and answers whether a command is
// available.  Everything that shells out to the host takes a Runner so
// that tests can substitute a fake.
type Runner interface {
	// Run executes a command, waits for it to complete, and returns
	// its standard output and standard error.
	Run(cmdName string, args ...string) (string, string, error)

	// LookPath reports whether cmdName is on the search path, and the
	// resolved path if so.
	LookPath(cmdName string) (string, bool)
}

// ExecRunner is the Runner that runs real commands on the host.
type ExecRunner struct{}

func (r ExecRunner) Run(cmdName string, args ...string) (string, string, error) {
	e := NewCmdExecutor(cmdName, args...)
	err := e.Cmd.Run()
	return e.StdOutBuf.String(), e.StdErrBuf.String(), err
}

func (r ExecRunner) LookPath(cmdName string) (string, bool) {
	path, err := exec.LookPath(cmdName)
	if err != nil {
		return "", false
	}
	return path, true
}
