package entity

import "strings"

// Filter returns the records whose searchable fields contain search, ignoring case.
// An empty search matches every record. The result is always a fresh slice.
func Filter[T any](records []T, search string, fields func(T) []string) []T {
	out := make([]T, 0, len(records))
	needle := strings.ToLower(search)
	for _, record := range records {
		if needle == "" || matches(needle, fields(record)) {
			out = append(out, record)
		}
	}
	return out
}

func matches(needle string, values []string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
