package service

import (
	"strconv"

	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

// SchoolController is the list controller instantiated for schools.
type SchoolController = entity.Controller[models.School]

const statusRules = "required,oneof=active inactive"

// SchoolSchema describes how schools are drafted, validated, searched and exported.
func SchoolSchema() entity.Schema[models.School] {
	return entity.Schema[models.School]{
		Singular: "School",
		Plural:   "schools",
		Fields: []entity.Field{
			{Key: "name", Label: "Name", Rules: "required"},
			{Key: "address", Label: "Address", Rules: "required"},
			{Key: "city", Label: "City"},
			{Key: "phone", Label: "Phone"},
			{Key: "email", Label: "Email"},
			{Key: "status", Label: "Status", Rules: statusRules, Default: string(models.StatusActive)},
		},
		Columns: []entity.Column[models.School]{
			{Header: "Name", Value: func(s models.School) string { return s.Name }},
			{Header: "City", Value: func(s models.School) string { return s.City }},
			{Header: "Email", Value: func(s models.School) string { return s.Email }},
			{Header: "Students", Value: func(s models.School) string { return strconv.Itoa(s.StudentsCount) }},
			{Header: "Teachers", Value: func(s models.School) string { return strconv.Itoa(s.TeachersCount) }},
			{Header: "Status", Value: func(s models.School) string { return string(s.Status) }},
		},
		ID:    func(s models.School) string { return s.ID },
		Label: func(s models.School) string { return s.Name },
		Searchable: func(s models.School) []string {
			return []string{s.Name, s.City}
		},
		ToDraft: func(s models.School) entity.Draft {
			return entity.Draft{
				"name":    s.Name,
				"address": s.Address,
				"city":    s.City,
				"phone":   s.Phone,
				"email":   s.Email,
				"status":  string(s.Status),
			}
		},
		Build: func(id string, d entity.Draft, createdAt models.Date) models.School {
			return models.School{
				ID:            id,
				Name:          d["name"],
				Address:       d["address"],
				City:          d["city"],
				Phone:         d["phone"],
				Email:         d["email"],
				StudentsCount: 0,
				TeachersCount: 0,
				Status:        draftStatus(d),
				CreatedAt:     createdAt,
			}
		},
		Merge: func(current models.School, d entity.Draft) models.School {
			current.Name = d["name"]
			current.Address = d["address"]
			current.City = d["city"]
			current.Phone = d["phone"]
			current.Email = d["email"]
			current.Status = draftStatus(d)
			return current
		},
	}
}

// NewSchoolController builds the school controller over seed.
func NewSchoolController(seed []models.School, opts ...entity.Option) *SchoolController {
	return entity.New(SchoolSchema(), seed, opts...)
}

func draftStatus(d entity.Draft) models.Status {
	status := models.Status(d["status"])
	if !status.Valid() {
		return models.StatusActive
	}
	return status
}
