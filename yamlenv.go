// Package yamlenv loads "key: value" files into an environment without
// overwriting variables that are already set.
//
// A file looks like a flat YAML mapping:
//
//	# comment lines and anything else that does not match are skipped
//	PORT: 3000
//	GREETING: "hello\nworld"
//	app.name: 'demo'
//
// Parse turns such text into a map. Config (or its alias Load) reads a file,
// parses it and copies every key that is not yet present into a Store,
// which defaults to the process environment.
package yamlenv

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// space and lineChar mirror the ECMAScript meaning of \s and "." so that
// files behave the same regardless of line terminators or a leading BOM.
const (
	space    = `[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]`
	lineChar = `[^\n\r\x{2028}\x{2029}]`
)

// lineRE matches one entry: optional indent, a key of word characters, dots
// and hyphens, a colon and an optional value.
var lineRE = regexp.MustCompile(`^` + space + `*([\w.-]+)` + space + `*:` + space + `*(` + lineChar + `*)` + space + `*$`)

// Parse converts src into a mapping of keys to values.
//
// Lines that do not look like "key: value" are ignored, so Parse never fails;
// the worst case is an empty map. When a key appears more than once the last
// value wins. Invalid UTF-8 is replaced with U+FFFD before matching.
func Parse[S ~string | ~[]byte](src S) map[string]string {
	parsed := map[string]string{}
	for _, line := range strings.Split(validUTF8(string(src)), "\n") {
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parsed[m[1]] = unquote(m[2])
	}
	return parsed
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := xunicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	return out
}

// unquote expands \n inside a double-quoted value, then drops one leading and
// one trailing quote character and trims whitespace. The quote stripping also
// applies to unquoted values, so `it's'` becomes `it's`.
func unquote(value string) string {
	if n := len(value); n > 0 && value[0] == '"' && value[n-1] == '"' {
		value = strings.ReplaceAll(value, `\n`, "\n")
	}
	if len(value) > 0 && isQuote(value[0]) {
		value = value[1:]
	}
	if n := len(value); n > 0 && isQuote(value[n-1]) {
		value = value[:n-1]
	}
	return strings.TrimFunc(value, isSpace)
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
