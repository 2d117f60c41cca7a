// Package sanitize normalizes raw, untrusted form input into canonical
// values. Nothing in this package returns an error: malformed client input
// degrades to an empty result instead of failing the request.
package sanitize

import (
	"encoding/json"
	"strings"
)

// String coerces input to a trimmed string. Nil and non-string values become
// the empty string.
func String(input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// StringArray parses raw as a JSON-encoded array of strings and returns the
// sanitized, non-empty elements. A blank input, invalid JSON, a JSON value
// that is not an array, or non-string elements all degrade to an empty (or
// smaller) result.
func StringArray(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(parsed))
	for _, el := range parsed {
		if s := String(el); s != "" {
			out = append(out, s)
		}
	}
	return out
}
