package entity

import "strings"

// Draft holds the not-yet-committed field values of an edit session, keyed by field.
type Draft map[string]string

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	if d == nil {
		return nil
	}
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Trimmed returns a copy with surrounding whitespace removed from every value.
func (d Draft) Trimmed() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// TrimmedChanges returns a copy where values that differ from original are trimmed and
// values equal to original are kept as they were.
func (d Draft) TrimmedChanges(original Draft) Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		if prev, ok := original[k]; ok && prev == v {
			out[k] = v
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}
