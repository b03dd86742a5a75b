package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
	"github.com/noah-isme/sma-adp-dashboard/pkg/export"
)

type exportCall struct {
	entity, format string
}

type fakeExportRecorder struct {
	calls []exportCall
}

func (f *fakeExportRecorder) RecordExport(entity, format string) {
	f.calls = append(f.calls, exportCall{entity, format})
}

type failingRenderer struct{}

func (failingRenderer) Render(export.Dataset) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestBuildDatasetUsesSchemaColumns(t *testing.T) {
	schools, _ := newControllers(t)

	data := BuildDataset("Schools", SchoolSchema().Columns, schools.List("oak"))
	assert.Equal(t, "Schools", data.Title)
	assert.Equal(t, []string{"Name", "City", "Email", "Students", "Teachers", "Status"}, data.Headers)
	assert.Equal(t, [][]string{{"Oak Valley Academy", "Oak Valley", "admin@oakvalley-academy.edu", "680", "48", "active"}}, data.Rows)
}

func TestExportRenderCSV(t *testing.T) {
	recorder := &fakeExportRecorder{}
	svc := NewExportService(nil, recorder, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC) }
	schools, _ := newControllers(t)

	file, err := svc.Render("schools", "", BuildDataset("Schools", SchoolSchema().Columns, schools.List("")))
	require.NoError(t, err)
	assert.Equal(t, "schools-20240304-050607.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Name,City,Email,Students,Teachers,Status", lines[0])
	assert.Equal(t, []exportCall{{"schools", ExportFormatCSV}}, recorder.calls)
}

func TestExportRenderPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil)
	_, admins := newControllers(t)

	file, err := svc.Render("admins", "PDF", BuildDataset("School Admins", AdminSchema(nil).Columns, admins.List("")))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(file.Body), "%PDF"))
}

func TestExportRenderRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil)

	_, err := svc.Render("schools", "xlsx", export.Dataset{Headers: []string{"Name"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, []string{"format"}, appErrors.FromError(err).FieldNames())
}

func TestExportRenderWrapsRendererFailure(t *testing.T) {
	svc := NewExportService(nil, nil, failingRenderer{}, nil)

	_, err := svc.Render("schools", ExportFormatCSV, export.Dataset{Headers: []string{"Name"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
