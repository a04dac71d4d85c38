package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/gandalfthegui/yamlenv"
	"github.com/gandalfthegui/yamlenv/cliopts"
	"github.com/spf13/pflag"
)

// cmdRun handles: yamlenv run [flags] [overrides...] -- <cmd> [args...]
//
// The command runs with the current environment, overrides applied on top,
// and the file merged in for every variable still unset. yamlenv exits with
// the command's exit code.
func cmdRun() {
	fs := pflag.NewFlagSet("run", pflag.ExitOnError)
	lf := addLoadFlags(fs)
	tty := fs.BoolP("tty", "t", false, "run the command under a pseudo-terminal")
	// Stop at the first positional so the command's own flags are left alone.
	fs.SetInterspersed(false)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: yamlenv run [-p path] [-e encoding] [-t] [-v] [yamlenv_config_<NAME>=<VALUE>...] -- <cmd> [args...]")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[2:])

	overrides, command := splitCommand(fs.Args())
	if len(command) == 0 {
		fs.Usage()
		os.Exit(1)
	}

	env, err := childEnv(lf, os.Environ(), overrides)
	if err != nil {
		fatal(err)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Env = env
	if *tty {
		err = runTTY(cmd)
	} else {
		err = runPlain(cmd)
	}
	os.Exit(exitCode(err))
}

// splitCommand separates the leading yamlenv_config_ overrides from the
// command to run. A "--" between them is dropped.
func splitCommand(args []string) (map[string]string, []string) {
	i := 0
	for i < len(args) && cliopts.IsOverride(args[i]) {
		i++
	}
	command := args[i:]
	if len(command) > 0 && command[0] == "--" {
		command = command[1:]
	}
	return cliopts.Match(args[:i]), command
}

// childEnv builds the command's environment from environ. Overrides replace
// inherited values; the file only fills in what is still missing.
func childEnv(lf *loadFlags, environ []string, overrides map[string]string) ([]string, error) {
	store := yamlenv.NewMapStore(environ)
	maps.Copy(store, overrides)
	if _, err := yamlenv.Config(lf.options(store)); err != nil {
		return nil, err
	}
	return store.Environ(), nil
}

// runPlain runs cmd on the current stdio. Terminal interrupts reach the child
// directly, so yamlenv only has to outlive them and pass SIGTERM along.
func runPlain(cmd *exec.Cmd) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if err := cmd.Start(); err != nil {
		signal.Stop(sigCh)
		return err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range sigCh {
			if sig == syscall.SIGTERM {
				cmd.Process.Signal(sig)
			}
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
		<-done
	}()
	return cmd.Wait()
}

// exitCode maps the result of running the child to yamlenv's own exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		return 1 // killed by a signal
	}
	fmt.Fprintf(os.Stderr, "yamlenv: %v\n", err)
	return 1
}
