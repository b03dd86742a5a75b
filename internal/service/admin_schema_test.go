package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

func TestAdminCreateResolvesSchoolName(t *testing.T) {
	_, admins := newControllers(t, entity.WithIDGenerator(func() string { return "admin-new" }))

	admins.OpenCreate()
	fillDraft(t, admins, map[string]string{
		"name":     "Nina Park",
		"email":    "n.park@oakvalley-academy.edu",
		"phone":    "+1 234-567-1010",
		"schoolId": "3",
	})
	result, err := admins.Submit()
	require.NoError(t, err)
	assert.Equal(t, models.Success("Admin Created", "Nina Park has been added successfully."), result.Notification)

	created, err := admins.Get("admin-new")
	require.NoError(t, err)
	assert.Equal(t, "Oak Valley Academy", created.SchoolName)
	assert.Equal(t, models.LastLoginNever, created.LastLogin)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, "admin-new", admins.List("")[0].ID)
}

func TestAdminCreateRequiresContactFields(t *testing.T) {
	_, admins := newControllers(t)

	admins.OpenCreate()
	fillDraft(t, admins, map[string]string{"name": "Only Name"})
	_, err := admins.Submit()
	require.Error(t, err)
	snap := admins.Session()
	assert.Equal(t, entity.ModeCreating, snap.Mode)
	assert.Equal(t, map[string]string{"email": "Email is required", "phone": "Phone is required"}, snap.Errors)
	assert.Len(t, admins.List(""), 6)
}

func TestAdminSchoolNameFollowsRename(t *testing.T) {
	schools, admins := newControllers(t)

	_, err := schools.OpenEdit("2")
	require.NoError(t, err)
	fillDraft(t, schools, map[string]string{"name": "Riverside Academy"})
	_, err = schools.Submit()
	require.NoError(t, err)

	for _, id := range []string{"2", "6"} {
		admin, err := admins.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "Riverside Academy", admin.SchoolName)
	}
	assert.Len(t, admins.List("riverside academy"), 2)
}

func TestAdminSchoolNameFallsBackToSnapshot(t *testing.T) {
	schools, admins := newControllers(t)

	_, err := schools.Delete("1")
	require.NoError(t, err)

	admin, err := admins.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "1", admin.SchoolID)
	assert.Equal(t, "Springfield Elementary", admin.SchoolName)
}

func TestAdminMoveToUnknownSchoolClearsName(t *testing.T) {
	_, admins := newControllers(t)

	_, err := admins.OpenEdit("5")
	require.NoError(t, err)
	fillDraft(t, admins, map[string]string{"schoolId": "missing"})
	_, err = admins.Submit()
	require.NoError(t, err)

	admin, err := admins.Get("5")
	require.NoError(t, err)
	assert.Equal(t, "missing", admin.SchoolID)
	assert.Empty(t, admin.SchoolName)
	assert.Equal(t, "2024-01-15 08:00 AM", admin.LastLogin)
}

func TestAdminSearchByNameEmailOrSchool(t *testing.T) {
	_, admins := newControllers(t)

	assert.Len(t, admins.List("RIVERSIDE"), 2)
	assert.Len(t, admins.List("m.chen@"), 1)
	assert.Len(t, admins.List("kim"), 1)
	assert.Empty(t, admins.List("+1 234"))
}
