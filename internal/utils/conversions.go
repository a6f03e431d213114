package utils

import "strings"

// ToStringSlice converts a decoded JSON claim into a list of strings. Providers
// send multi-valued claims either as an array or as a single space separated
// string; non-string array entries are skipped.
func ToStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, t...)
	case string:
		out = append(out, strings.Fields(t)...)
	}
	return out
}
