//go:build !windows

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// runTTY runs cmd on a new pseudo-terminal and relays it to ours. When stdin
// is a terminal it is put in raw mode for the duration and window size
// changes are forwarded to the child.
func runTTY(cmd *exec.Cmd) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			cmd.Process.Kill()
			cmd.Wait()
			return fmt.Errorf("cannot set raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)

		winchCh := make(chan os.Signal, 1)
		signal.Notify(winchCh, syscall.SIGWINCH)
		defer func() {
			signal.Stop(winchCh)
			close(winchCh)
		}()
		go func() {
			for range winchCh {
				pty.InheritSize(os.Stdin, ptmx)
			}
		}()
		winchCh <- syscall.SIGWINCH // initial size
	}

	go io.Copy(ptmx, os.Stdin)
	// Returns once the child closes its side of the pty.
	io.Copy(os.Stdout, ptmx)
	return cmd.Wait()
}
