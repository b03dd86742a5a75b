package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

func TestDefaultDataset(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)
	require.Len(t, ds.Schools, 5)
	require.Len(t, ds.Admins, 6)

	springfield := ds.Schools[0]
	assert.Equal(t, "Springfield Elementary", springfield.Name)
	assert.Equal(t, "+1 234-567-8901", springfield.Phone)
	assert.Equal(t, 450, springfield.StudentsCount)
	assert.Equal(t, models.StatusActive, springfield.Status)
	assert.Equal(t, "2023-01-15", springfield.CreatedAt.String())

	assert.Equal(t, models.StatusInactive, ds.Schools[3].Status)
	assert.Equal(t, "2024-01-14 10:30 AM", ds.Admins[5].LastLogin)
	assert.Equal(t, "2", ds.Admins[5].SchoolID)
}

func TestParseRejectsInvalidDatasets(t *testing.T) {
	cases := map[string]string{
		"duplicate id":   "schools:\n  - {id: \"1\", name: A, status: active}\n  - {id: \"1\", name: B, status: active}\n",
		"missing id":     "admins:\n  - {name: A, status: active}\n",
		"bad status":     "schools:\n  - {id: \"1\", name: A, status: archived}\n",
		"negative count": "schools:\n  - {id: \"1\", name: A, status: active, studentsCount: -1}\n",
		"bad date":       "schools:\n  - {id: \"1\", name: A, status: active, createdAt: yesterday}\n",
		"not yaml":       "schools: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schools:\n  - {id: s1, name: Solo, status: inactive, createdAt: \"2024-02-02\"}\n"), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Schools, 1)
	assert.Equal(t, "Solo", ds.Schools[0].Name)
	assert.Empty(t, ds.Admins)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	ds, err = Load("")
	require.NoError(t, err)
	assert.Len(t, ds.Schools, 5)
}
