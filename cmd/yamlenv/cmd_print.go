package main

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/gandalfthegui/yamlenv"
	"github.com/gandalfthegui/yamlenv/cliopts"
	"github.com/gandalfthegui/yamlenv/internal/envfile"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// cmdPrint handles: yamlenv print [-p path] [-e encoding] [-o format] [overrides...]
//
// The file is merged into an empty store, so the output is exactly what the
// file (plus overrides) defines and the current environment is not consulted.
func cmdPrint() {
	fs := pflag.NewFlagSet("print", pflag.ExitOnError)
	lf := addLoadFlags(fs)
	format := fs.StringP("output", "o", envfile.FormatEnv, "output format: env, yaml or json")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: yamlenv print [-p path] [-e encoding] [-o env|yaml|json] [yamlenv_config_<NAME>=<VALUE>...]")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[2:])
	if rest := cliopts.Strip(fs.Args()); len(rest) != 0 {
		fmt.Fprintf(os.Stderr, "yamlenv: unexpected argument %q\n", rest[0])
		fs.Usage()
		os.Exit(1)
	}

	color := *format == envfile.FormatEnv && term.IsTerminal(int(os.Stdout.Fd()))
	if err := printEnv(os.Stdout, lf.options(yamlenv.MapStore{}), cliopts.Match(fs.Args()), *format, color); err != nil {
		fatal(err)
	}
}

// printEnv loads the file described by opts, lays overrides on top and
// writes the rendered result to w.
func printEnv(w io.Writer, opts yamlenv.Options, overrides map[string]string, format string, color bool) error {
	parsed, err := yamlenv.Config(opts)
	if err != nil {
		return err
	}
	maps.Copy(parsed, overrides)

	data, err := envfile.Format(parsed, format)
	if err != nil {
		return err
	}
	if color {
		data = highlightKeys(data)
	}
	_, err = w.Write(data)
	return err
}
