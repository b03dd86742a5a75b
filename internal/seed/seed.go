// Package seed loads the mock dataset the dashboard starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Dataset is the initial content of every entity store.
type Dataset struct {
	Schools []models.School      `yaml:"schools"`
	Admins  []models.SchoolAdmin `yaml:"admins"`
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(defaultSeed)
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and checks a YAML dataset.
func Parse(raw []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := ds.validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func (ds Dataset) validate() error {
	seen := make(map[string]struct{}, len(ds.Schools))
	for _, s := range ds.Schools {
		if s.ID == "" {
			return fmt.Errorf("seed school %q has no id", s.Name)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate seed school id %q", s.ID)
		}
		if !s.Status.Valid() {
			return fmt.Errorf("seed school %q has invalid status %q", s.ID, s.Status)
		}
		if s.StudentsCount < 0 || s.TeachersCount < 0 {
			return fmt.Errorf("seed school %q has negative counts", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(ds.Admins))
	for _, a := range ds.Admins {
		if a.ID == "" {
			return fmt.Errorf("seed admin %q has no id", a.Name)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("duplicate seed admin id %q", a.ID)
		}
		if !a.Status.Valid() {
			return fmt.Errorf("seed admin %q has invalid status %q", a.ID, a.Status)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}
