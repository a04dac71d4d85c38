package yamlenv

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// DefaultFilename is the file Config reads from the working directory
	// when Options.Path is empty.
	DefaultFilename = "env.yaml"
	// DefaultEncoding is used when Options.Encoding is empty.
	DefaultEncoding = "utf8"
)

// Options controls Config. The zero value reads ./env.yaml as UTF-8 into the
// process environment.
type Options struct {
	Path     string       // file to read; default <cwd>/env.yaml
	Encoding string       // WHATWG or IANA label such as "utf8", "latin1", "utf-16le"
	Store    Store        // environment to merge into; default ProcessEnv
	Logger   *slog.Logger // receives a debug record per key; nil discards
}

// Config reads the file named by opts, parses it and sets every key that is
// not already present in the store. Keys that exist are left untouched.
//
// On success the full parsed mapping is returned, including keys that were
// skipped. If the file cannot be read or decoded the mapping is nil, the
// error describes why, and nothing has been merged.
//
// A failing Store.Set is different: keys are applied in sorted order and the
// merge stops at the first failure, so the store keeps every key set before
// it. Config then returns the parsed mapping together with the error.
func Config(opts Options) (map[string]string, error) {
	path := opts.Path
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", DefaultFilename, err)
		}
		path = filepath.Join(wd, DefaultFilename)
	}
	label := opts.Encoding
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, label, err)
	}
	parsed := Parse(text)

	store := opts.Store
	if store == nil {
		store = ProcessEnv
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, key := range slices.Sorted(maps.Keys(parsed)) {
		if store.Has(key) {
			logger.Debug("skip", "key", key, "reason", "already set")
			continue
		}
		if err := store.Set(key, parsed[key]); err != nil {
			return parsed, fmt.Errorf("set %s: %w", key, err)
		}
		logger.Debug("set", "key", key)
	}
	logger.Debug("loaded", "path", path, "count", len(parsed))
	return parsed, nil
}

// Load is another name for Config.
func Load(opts Options) (map[string]string, error) {
	return Config(opts)
}

// nodeLabels maps encoding names common in Node-style configs to WHATWG labels.
var nodeLabels = map[string]string{
	"ucs2":    "utf-16le",
	"ucs-2":   "utf-16le",
	"utf16le": "utf-16le",
}

// byteLabels name true ISO-8859-1, where every byte is the code point of the
// same value. WHATWG maps these labels to windows-1252 instead.
var byteLabels = map[string]bool{
	"latin1":     true,
	"binary":     true,
	"iso-8859-1": true,
	"iso8859-1":  true,
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if byteLabels[name] {
		return charmap.ISO8859_1, nil
	}
	if alias, ok := nodeLabels[name]; ok {
		name = alias
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	return enc, nil
}
