package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	body, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Name", "City"},
		Rows:    [][]string{{"Oak Valley Academy", "Oak Valley"}, {"Comma, Inc", "Quote \"Town\""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Name,City\nOak Valley Academy,Oak Valley\n\"Comma, Inc\",\"Quote \"\"Town\"\"\"\n", string(body))
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{Headers: []string{"Name", "City"}, Rows: [][]string{{"only"}}})
	require.Error(t, err)

	_, err = NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	body, err := NewPDFExporter().Render(Dataset{
		Title:   "Schools",
		Headers: []string{"Name", "City"},
		Rows:    [][]string{{"Oak Valley Academy", "Oak Valley"}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))

	_, err = NewPDFExporter().Render(Dataset{Title: "Empty"})
	require.Error(t, err)
}
