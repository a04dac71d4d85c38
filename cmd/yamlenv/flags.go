package main

import (
	"log/slog"
	"os"

	"charm.land/log/v2"
	"github.com/gandalfthegui/yamlenv"
	"github.com/spf13/pflag"
)

// loadFlags are the flags shared by every subcommand that reads a file.
type loadFlags struct {
	path     string
	encoding string
	verbose  bool
}

func addLoadFlags(fs *pflag.FlagSet) *loadFlags {
	lf := &loadFlags{}
	fs.StringVarP(&lf.path, "path", "p", "", "file to load (default ./"+yamlenv.DefaultFilename+")")
	fs.StringVarP(&lf.encoding, "encoding", "e", yamlenv.DefaultEncoding, "text encoding of the file")
	fs.BoolVarP(&lf.verbose, "verbose", "v", false, "log every key that is set or skipped")
	return lf
}

func (lf *loadFlags) options(store yamlenv.Store) yamlenv.Options {
	return yamlenv.Options{
		Path:     lf.path,
		Encoding: lf.encoding,
		Store:    store,
		Logger:   newLogger(lf.verbose),
	}
}

// newLogger writes to stderr so it never mixes with print output or the
// child's stdout.
func newLogger(verbose bool) *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{Prefix: "yamlenv"})
	if verbose {
		handler.SetLevel(log.DebugLevel)
	}
	return slog.New(handler)
}
