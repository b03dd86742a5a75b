package service

import (
	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

// AdminController is the list controller instantiated for school admins.
type AdminController = entity.Controller[models.SchoolAdmin]

type schoolDirectory interface {
	Get(id string) (models.School, error)
}

// AdminSchema describes school admins. The school name shown for an admin is resolved from
// schools at read time; the stored SchoolName is only used once the school is gone.
func AdminSchema(schools schoolDirectory) entity.Schema[models.SchoolAdmin] {
	lookup := func(id string) (string, bool) {
		if schools == nil || id == "" {
			return "", false
		}
		school, err := schools.Get(id)
		if err != nil {
			return "", false
		}
		return school.Name, true
	}

	return entity.Schema[models.SchoolAdmin]{
		Singular: "Admin",
		Plural:   "admins",
		Fields: []entity.Field{
			{Key: "name", Label: "Name", Rules: "required"},
			{Key: "email", Label: "Email", Rules: "required"},
			{Key: "phone", Label: "Phone", Rules: "required"},
			{Key: "schoolId", Label: "School"},
			{Key: "status", Label: "Status", Rules: statusRules, Default: string(models.StatusActive)},
		},
		Columns: []entity.Column[models.SchoolAdmin]{
			{Header: "Name", Value: func(a models.SchoolAdmin) string { return a.Name }},
			{Header: "Email", Value: func(a models.SchoolAdmin) string { return a.Email }},
			{Header: "Phone", Value: func(a models.SchoolAdmin) string { return a.Phone }},
			{Header: "School", Value: func(a models.SchoolAdmin) string { return a.SchoolName }},
			{Header: "Status", Value: func(a models.SchoolAdmin) string { return string(a.Status) }},
			{Header: "Last Login", Value: func(a models.SchoolAdmin) string { return a.LastLogin }},
		},
		ID:    func(a models.SchoolAdmin) string { return a.ID },
		Label: func(a models.SchoolAdmin) string { return a.Name },
		Searchable: func(a models.SchoolAdmin) []string {
			return []string{a.Name, a.Email, a.SchoolName}
		},
		ToDraft: func(a models.SchoolAdmin) entity.Draft {
			return entity.Draft{
				"name":     a.Name,
				"email":    a.Email,
				"phone":    a.Phone,
				"schoolId": a.SchoolID,
				"status":   string(a.Status),
			}
		},
		Build: func(id string, d entity.Draft, createdAt models.Date) models.SchoolAdmin {
			name, _ := lookup(d["schoolId"])
			return models.SchoolAdmin{
				ID:         id,
				Name:       d["name"],
				Email:      d["email"],
				Phone:      d["phone"],
				SchoolID:   d["schoolId"],
				SchoolName: name,
				Status:     draftStatus(d),
				LastLogin:  models.LastLoginNever,
				CreatedAt:  createdAt,
			}
		},
		Merge: func(current models.SchoolAdmin, d entity.Draft) models.SchoolAdmin {
			if name, ok := lookup(d["schoolId"]); ok {
				current.SchoolName = name
			} else if d["schoolId"] != current.SchoolID {
				current.SchoolName = ""
			}
			current.Name = d["name"]
			current.Email = d["email"]
			current.Phone = d["phone"]
			current.SchoolID = d["schoolId"]
			current.Status = draftStatus(d)
			return current
		},
		Present: func(a models.SchoolAdmin) models.SchoolAdmin {
			if name, ok := lookup(a.SchoolID); ok {
				a.SchoolName = name
			}
			return a
		},
	}
}

// NewAdminController builds the admin controller over seed, resolving school names via schools.
func NewAdminController(seed []models.SchoolAdmin, schools schoolDirectory, opts ...entity.Option) *AdminController {
	return entity.New(AdminSchema(schools), seed, opts...)
}
