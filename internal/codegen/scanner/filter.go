package scanner

import "strings"

// IncludeElement reports whether name survives the private-name filter.
// With ignorePrivate set, names starting with "_", or case-insensitively
// with "internal" or "private", are excluded.
func IncludeElement(name string, ignorePrivate bool) bool {
	if !ignorePrivate {
		return true
	}
	if strings.HasPrefix(name, "_") {
		return false
	}
	lower := strings.ToLower(name)
	return !strings.HasPrefix(lower, "internal") && !strings.HasPrefix(lower, "private")
}
