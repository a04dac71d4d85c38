//go:build windows

package main

import (
	"errors"
	"os/exec"
)

func runTTY(*exec.Cmd) error {
	return errors.New("--tty is not supported on Windows")
}
