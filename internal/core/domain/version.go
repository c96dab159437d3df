package domain

import "strings"

// ResolveNodeVersion returns the first non-empty hint reduced to its major
// version. A range such as ">=18.0.0" yields "18". Hints without a leading
// number, such as "lts", are returned as is.
func ResolveNodeVersion(hints ...string) string {
	for _, hint := range hints {
		hint = strings.TrimSpace(hint)
		if hint == "" {
			continue
		}
		return nodeMajor(hint)
	}
	return DefaultNodeVersion
}

func nodeMajor(v string) string {
	trimmed := strings.TrimLeft(v, "<>=^~vV ")
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return v
	}
	return trimmed[:end]
}
