// yamlenv – load env.yaml files into a process environment.
//
// Usage:
//
//	yamlenv print [-p path] [-o env|yaml|json]   – show what a file would set
//	yamlenv run [-p path] [-t] -- <cmd> [args…]  – run a command with the file merged in
//
// Variables that are already set are never overwritten. Arguments of the form
// yamlenv_config_<NAME>=<VALUE> placed before the command override both the
// file and the current environment.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "print":
		cmdPrint()
	case "run":
		cmdRun()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "yamlenv: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `yamlenv – load key: value files into the environment

Commands:
  print [flags] [yamlenv_config_<NAME>=<VALUE>...]
                           Print the parsed file (nothing is exported)
    -o, --output <fmt>     env (default), yaml or json
  run [flags] [yamlenv_config_<NAME>=<VALUE>...] -- <cmd> [args...]
                           Run <cmd> with the file merged into its environment
    -t, --tty              Run <cmd> under a pseudo-terminal

Common flags:
  -p, --path <file>        File to load (default ./env.yaml)
  -e, --encoding <name>    Text encoding of the file (default utf8)
  -v, --verbose            Log every key that is set or skipped`)
}

// fatal prints err in the usual "yamlenv: ..." form and exits 1.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "yamlenv: %v\n", err)
	os.Exit(1)
}
