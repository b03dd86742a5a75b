package entity

import "github.com/noah-isme/sma-adp-dashboard/internal/models"

// Field describes one editable draft field of an entity.
type Field struct {
	Key     string
	Label   string
	Rules   string
	Default string
}

// Column describes one column of the exported list view.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Schema parameterizes a Controller for one entity type.
type Schema[T any] struct {
	// Singular and Plural name the entity in notifications, logs and metrics.
	Singular string
	Plural   string

	Fields  []Field
	Columns []Column[T]

	ID         func(T) string
	Label      func(T) string
	Searchable func(T) []string
	ToDraft    func(T) Draft
	Build      func(id string, draft Draft, createdAt models.Date) T
	Merge      func(current T, draft Draft) T

	// Present, when set, decorates records on every read.
	Present func(T) T
}

// BlankDraft returns a draft holding every field's default value.
func (s Schema[T]) BlankDraft() Draft {
	d := make(Draft, len(s.Fields))
	for _, f := range s.Fields {
		d[f.Key] = f.Default
	}
	return d
}

func (s Schema[T]) field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema[T]) present(record T) T {
	if s.Present == nil {
		return record
	}
	return s.Present(record)
}
