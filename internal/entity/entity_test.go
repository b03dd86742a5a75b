package entity

import (
	"strings"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

type item struct {
	ID        string
	Name      string
	Tag       string
	Status    string
	CreatedAt models.Date
}

func itemSchema() Schema[item] {
	return Schema[item]{
		Singular: "Item",
		Plural:   "items",
		Fields: []Field{
			{Key: "name", Label: "Name", Rules: "required"},
			{Key: "tag", Label: "Tag"},
			{Key: "status", Label: "Status", Rules: "required,oneof=active inactive", Default: "active"},
		},
		Columns: []Column[item]{
			{Header: "Name", Value: func(i item) string { return i.Name }},
		},
		ID:         func(i item) string { return i.ID },
		Label:      func(i item) string { return i.Name },
		Searchable: func(i item) []string { return []string{i.Name, i.Tag} },
		ToDraft: func(i item) Draft {
			return Draft{"name": i.Name, "tag": i.Tag, "status": i.Status}
		},
		Build: func(id string, d Draft, createdAt models.Date) item {
			return item{ID: id, Name: d["name"], Tag: d["tag"], Status: d["status"], CreatedAt: createdAt}
		},
		Merge: func(current item, d Draft) item {
			current.Name = d["name"]
			current.Tag = d["tag"]
			current.Status = d["status"]
			return current
		},
	}
}

func seedItems() []item {
	return []item{
		{ID: "1", Name: "Alpha", Tag: "north", Status: "active", CreatedAt: mustDate("2023-01-01")},
		{ID: "2", Name: "Beta", Tag: "south", Status: "inactive", CreatedAt: mustDate("2023-02-01")},
		{ID: "3", Name: "Gamma", Tag: "North-East", Status: "active", CreatedAt: mustDate("2023-03-01")},
	}
}

func mustDate(raw string) models.Date {
	d, err := models.ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func ids(records []item) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func sequence(values ...string) func() string {
	i := 0
	return func() string {
		v := values[i%len(values)]
		i++
		return v
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
