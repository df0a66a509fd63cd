package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// pidBackoff is the initial time to wait while another run holds the PID file
const pidBackoff = 100 * time.Millisecond

// maxPidJitter is the maximum random time added between two checks
const maxPidJitter = time.Second

// ErrPidTimeout is returned when another run still holds the PID file
var ErrPidTimeout = errors.New("timeout waiting for PID file")

// acquirePid waits up to timeout for the PID file to be released by another
// run, then writes the current process ID into it
func acquirePid(file string, timeout time.Duration) error {
	if file == "" {
		return nil
	}

	deadline := time.Now().Add(timeout)
	wait := pidBackoff
	for {
		fd, err := os.OpenFile(file, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			log.Debugf("writing PID to %s", file)
			_, err = fd.WriteString(strconv.Itoa(os.Getpid()))
			if closeErr := fd.Close(); err == nil {
				err = closeErr
			}
			return err
		}
		if !os.IsExist(err) {
			return err
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w %s", ErrPidTimeout, file)
		}
		log.Debugf("waiting %s before checking PID again", wait)
		time.Sleep(wait)
		wait += time.Duration(rand.Int63n(int64(maxPidJitter)))
	}
}

// releasePid removes the PID file
func releasePid(file string) error {
	if file == "" {
		return nil
	}
	log.Debugf("removing PID file %s", file)
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
