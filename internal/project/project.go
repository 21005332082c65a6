// Package project persists packing projects and the container inventory as
// JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/BoxFit/internal/model"
)

// SaveProject writes the project to path, creating parent directories.
func SaveProject(path string, p model.Project) error {
	if p.Version == "" {
		p.Version = model.ProjectVersion
	}
	if p.Items == nil {
		p.Items = []model.ItemSpec{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project file. Settings missing from older files fall
// back to the defaults.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	p := model.Project{Settings: model.DefaultSettings()}
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Version == "" {
		return model.Project{}, fmt.Errorf("invalid project file: missing version field")
	}
	if p.Items == nil {
		p.Items = []model.ItemSpec{}
	}
	if p.Settings.Scalar == "" {
		p.Settings.Scalar = model.ScalarFloat64
	}
	return p, nil
}

// RecordResult stores the outcome of a packing run on the project.
func RecordResult[T model.Scalar](p *model.Project, runID string, res model.PackResult[T]) {
	p.Result = &model.ProjectResult{
		RunID:      runID,
		PackedAt:   time.Now().UTC().Format(time.RFC3339),
		Bins:       res.Groups(),
		Efficiency: res.TotalEfficiency(),
	}
}
