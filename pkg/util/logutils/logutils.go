// Copyright (c) 2024, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package logutils

import (
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xcat2/xcatctl/pkg/util"
)

// Waiter defines a function to wait for and a message
// to display while waiting.
type Waiter struct {
	WaitFunction func(interface{}) error
	Args         interface{}
	Message      string
	Error        error
	done         bool
	mutex        sync.RWMutex
}

// Info is a wrapper around log.Info()
func Info(s string) {
	log.Info(s)
}

// Debug is a wrapper around log.Debug()
func Debug(s string) {
	log.Debug(s)
}

func waitWithStatus(waiter *Waiter) {
	err := waiter.WaitFunction(waiter.Args)

	waiter.mutex.Lock()
	waiter.done = true
	waiter.Error = err
	waiter.mutex.Unlock()
}

// shouldBackup determines if WaitFor
// should back up lines each loop
func shouldBackup() (bool, error) {
	return util.FileIsTTY(os.Stdout)
}

// backup moves the cursor up n lines
//
// ^[[&dA is the VT-100 escape code to move the
// cursor up %d lines.  In GO, ^[ is \x1b
func backup(n int) {
	fmt.Printf("\x1b[%dA", n)
}

var colorReset = "\x1b[0m"
var colorYellow = "\x1b[33m"
var colorGreen = "\x1b[32m"

var clearLine = "\x1b[K"

// printDone prints a message for completed jobs
// formatted based on if it was successful or not.
func printDone(logFn func(string), w *Waiter) {
	if w.Error != nil {
		log.Errorf("%s: %s%s", w.Message, w.Error, clearLine)
	} else {
		logFn(fmt.Sprintf("%s: %s%s%s%s", w.Message, colorGreen, "ok", colorReset, clearLine))
	}
}

var waitStrings []string = []string{
	colorYellow + "waiting",
	colorYellow + "waiting.",
	colorYellow + "waiting..",
	colorYellow + "waiting...",
	colorYellow + "waiting ..",
	colorYellow + "waiting  .",
}

func waitString(msg string, iter int) string {
	idx := iter % len(waitStrings)
	return fmt.Sprintf("%s: %s%s%s", msg, waitStrings[idx], colorReset, clearLine)
}

// WaitFor runs a waiter in a goroutine and pretty-prints its message
// until it completes.  Returns the error from the wait function, if any.
func WaitFor(logFn func(string), w *Waiter) error {
	doBackup, err := shouldBackup()
	if err != nil {
		log.Error(err)
		return err
	}

	go waitWithStatus(w)

	loops := 0
	for {
		w.mutex.RLock()
		if w.done {
			w.mutex.RUnlock()
			break
		}
		w.mutex.RUnlock()

		logFn(waitString(w.Message, loops))
		loops = loops + 1
		if doBackup {
			backup(1)
		}
		time.Sleep(500 * time.Millisecond)
	}

	printDone(logFn, w)
	return w.Error
}
