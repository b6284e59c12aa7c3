// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package fake

import (
	"fmt"
	"strings"
)

// Call records one command execution seen by the FakeRunner.
type Call struct {
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell command line.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is a scripted outcome for a command.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeRunner implements unix.Runner for tests.  Commands on the
// Commands path set are reported present by LookPath.  Run consults
// Results keyed by the rendered command line; unscripted commands
// succeed with empty output.
type FakeRunner struct {
	Commands map[string]bool
	Results  map[string]Result
	Calls    []Call
}

// NewFakeRunner creates a FakeRunner that knows about the given commands.
func NewFakeRunner(commands ...string) *FakeRunner {
	m := map[string]bool{}
	for _, c := range commands {
		m[c] = true
	}
	return &FakeRunner{
		Commands: m,
		Results:  map[string]Result{},
	}
}

func (f *FakeRunner) Run(cmdName string, args ...string) (string, string, error) {
	call := Call{Name: cmdName, Args: args}
	f.Calls = append(f.Calls, call)
	if res, ok := f.Results[call.String()]; ok {
		return res.Stdout, res.Stderr, res.Err
	}
	return "", "", nil
}

func (f *FakeRunner) LookPath(cmdName string) (string, bool) {
	if f.Commands[cmdName] {
		return fmt.Sprintf("/usr/bin/%s", cmdName), true
	}
	return "", false
}

// CallLines renders every recorded call, one per line, for assertions.
func (f *FakeRunner) CallLines() []string {
	var lines []string
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
