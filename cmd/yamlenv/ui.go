package main

import "strings"

const (
	colorDim   = "\033[2m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// highlightKeys colours the KEY part of each KEY=VALUE line.
func highlightKeys(data []byte) []byte {
	var b strings.Builder
	for _, line := range strings.SplitAfter(string(data), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			b.WriteString(line)
			continue
		}
		b.WriteString(colorCyan + k + colorReset + colorDim + "=" + colorReset + v)
	}
	return []byte(b.String())
}
