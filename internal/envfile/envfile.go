// Package envfile renders parsed yamlenv mappings as dotenv, YAML or JSON
// documents for the yamlenv CLI.
package envfile

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FormatEnv  = "env"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Format renders m in the named format. All formats sort keys; an empty
// mapping renders as an empty dotenv file, "{}" in YAML and JSON.
func Format(m map[string]string, format string) ([]byte, error) {
	switch format {
	case FormatEnv:
		return marshalEnv(m)
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatEnv, FormatYAML, FormatJSON)
	}
}

func marshalEnv(m map[string]string) ([]byte, error) {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		line, err := godotenv.Marshal(map[string]string{k: v})
		if err != nil {
			return nil, fmt.Errorf("marshal env: %w", err)
		}
		// Marshal writes integer-looking values through %d, so "007" would
		// come back as 7.
		if n, err := strconv.Atoi(v); err == nil && strconv.Itoa(n) != v {
			line = k + `="` + v + `"`
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return nil, nil
	}
	return []byte(b.String()), nil
}
