package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
)

func TestSchoolCreateThenRead(t *testing.T) {
	schools, _ := newControllers(t)
	before := schools.List("")

	schools.OpenCreate()
	fillDraft(t, schools, map[string]string{
		"name":    "Lincoln Elementary",
		"address": "10 Pine St",
		"city":    "Lincoln",
		"phone":   "555-0100",
		"email":   "info@lincoln.edu",
	})
	result, err := schools.Submit()
	require.NoError(t, err)
	assert.Equal(t, models.Success("School Created", "Lincoln Elementary has been added successfully."), result.Notification)

	after := schools.List("")
	require.Len(t, after, len(before)+1)

	created := after[0]
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)
	for _, s := range before {
		assert.NotEqual(t, s.ID, created.ID)
	}
	assert.Equal(t, models.School{
		ID:            created.ID,
		Name:          "Lincoln Elementary",
		Address:       "10 Pine St",
		City:          "Lincoln",
		Phone:         "555-0100",
		Email:         "info@lincoln.edu",
		StudentsCount: 0,
		TeachersCount: 0,
		Status:        models.StatusActive,
		CreatedAt:     models.NewDate(fixedNow),
	}, created)
	assert.Equal(t, schoolIDs(before), schoolIDs(after[1:]))
}

func TestSchoolCreateRequiresNameAndAddress(t *testing.T) {
	schools, _ := newControllers(t)

	schools.OpenCreate()
	fillDraft(t, schools, map[string]string{"city": "Nowhere"})
	result, err := schools.Submit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, []string{"address", "name"}, appErrors.FromError(err).FieldNames())
	assert.Equal(t, "Please fill in all fields: Address, Name", result.Notification.Description)
	assert.Len(t, schools.List(""), 5)
}

func TestSchoolUpdateKeepsCountsAndCreatedAt(t *testing.T) {
	schools, _ := newControllers(t)
	before, err := schools.Get("2")
	require.NoError(t, err)

	_, err = schools.OpenEdit("2")
	require.NoError(t, err)
	fillDraft(t, schools, map[string]string{"name": "Riverside Senior High"})
	_, err = schools.Submit()
	require.NoError(t, err)

	after, err := schools.Get("2")
	require.NoError(t, err)
	expected := before
	expected.Name = "Riverside Senior High"
	assert.Equal(t, expected, after)
	assert.Equal(t, 1200, after.StudentsCount)
	assert.Equal(t, "2022-08-20", after.CreatedAt.String())
}

func TestSchoolSearchByNameOrCity(t *testing.T) {
	schools, _ := newControllers(t)

	assert.Equal(t, []string{"3"}, schoolIDs(schools.List("OAK")))
	assert.Equal(t, []string{"4"}, schoolIDs(schools.List("sunset city")))
	assert.Empty(t, schools.List("springfield-elementary.edu"))
	assert.Len(t, schools.List(""), 5)
}

func TestSchoolDelete(t *testing.T) {
	schools, _ := newControllers(t)

	result, err := schools.Delete("4")
	require.NoError(t, err)
	assert.Equal(t, models.Destructive("School Deleted", "Sunset Middle School has been removed."), result.Notification)
	assert.Equal(t, []string{"1", "2", "3", "5"}, schoolIDs(schools.List("")))

	_, err = schools.Delete("4")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Len(t, schools.List(""), 4)
}

func TestSchoolDraftRoundTrip(t *testing.T) {
	schema := SchoolSchema()
	school := models.School{ID: "x", Name: "A", Address: "B", City: "C", Phone: "D", Email: "E", Status: models.StatusInactive}
	merged := schema.Merge(school, schema.ToDraft(school))
	assert.Equal(t, school, merged)

	assert.Equal(t, "active", schema.BlankDraft()["status"])
}
