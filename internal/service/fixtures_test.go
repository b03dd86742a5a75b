package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	"github.com/noah-isme/sma-adp-dashboard/internal/seed"
)

var fixedNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func loadSeed(t *testing.T) seed.Dataset {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return ds
}

func newControllers(t *testing.T, opts ...entity.Option) (*SchoolController, *AdminController) {
	t.Helper()
	ds := loadSeed(t)
	opts = append([]entity.Option{entity.WithClock(func() time.Time { return fixedNow })}, opts...)
	schools := NewSchoolController(ds.Schools, opts...)
	admins := NewAdminController(ds.Admins, schools, opts...)
	return schools, admins
}

func fillDraft(t *testing.T, ctrl interface {
	UpdateField(key, value string) (entity.SessionSnapshot, error)
}, values map[string]string) {
	t.Helper()
	for key, value := range values {
		_, err := ctrl.UpdateField(key, value)
		require.NoError(t, err)
	}
}

func schoolIDs(records []models.School) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
