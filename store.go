package yamlenv

import (
	"os"
	"slices"
	"strings"
)

// Store is the environment Config merges into.
type Store interface {
	Get(key string) string
	Has(key string) bool
	Set(key, value string) error
}

// ProcessEnv is the environment of the running process.
var ProcessEnv Store = processEnv{}

type processEnv struct{}

func (processEnv) Get(key string) string { return os.Getenv(key) }

// Has reports true for variables that are set to the empty string.
func (processEnv) Has(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func (processEnv) Set(key, value string) error { return os.Setenv(key, value) }

// MapStore is an in-memory Store, used to build the environment of a child
// process without touching the current one. Set on a nil MapStore panics.
type MapStore map[string]string

// NewMapStore seeds a MapStore from KEY=VALUE pairs such as os.Environ().
// Entries without "=" are ignored; later duplicates win.
func NewMapStore(environ []string) MapStore {
	m := make(MapStore, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

func (m MapStore) Get(key string) string { return m[key] }

func (m MapStore) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m MapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

// Environ returns the store as sorted KEY=VALUE pairs, ready for exec.Cmd.Env.
func (m MapStore) Environ() []string {
	env := make([]string, 0, len(m))
	for k, v := range m {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)
	return env
}
