// Package cliopts picks yamlenv_config_<NAME>=<VALUE> overrides out of a
// list of command-line arguments.
//
// It is independent of parsing and merging: callers decide what the scraped
// values override.
package cliopts

import "regexp"

// Prefix starts every override argument.
const Prefix = "yamlenv_config_"

// optionRE captures NAME and VALUE. NAME is greedy, so the last "=" that
// still leaves a non-empty VALUE separates them. Matching stops at the first
// line terminator.
var optionRE = regexp.MustCompile(`^` + Prefix + `([^\n\r\x{2028}\x{2029}]+)=([^\n\r\x{2028}\x{2029}]+)`)

// Match returns NAME -> VALUE for every override in args. Arguments that do
// not match are ignored; a repeated NAME keeps its last value.
func Match(args []string) map[string]string {
	overrides := map[string]string{}
	for _, arg := range args {
		if m := optionRE.FindStringSubmatch(arg); m != nil {
			overrides[m[1]] = m[2]
		}
	}
	return overrides
}

// IsOverride reports whether arg would be picked up by Match.
func IsOverride(arg string) bool {
	return optionRE.MatchString(arg)
}

// Strip returns args without the overrides, preserving order.
func Strip(args []string) []string {
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if !IsOverride(arg) {
			rest = append(rest, arg)
		}
	}
	return rest
}
