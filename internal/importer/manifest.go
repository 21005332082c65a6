package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/piwi3910/BoxFit/internal/model"
	"gopkg.in/yaml.v3"
)

// Manifest is the structured item-list format shared by YAML and JSON files.
// A file may also hold a bare list of items.
type Manifest struct {
	Container *model.ContainerSpec `json:"container,omitempty" yaml:"container,omitempty"`
	Items     []model.ItemSpec     `json:"items" yaml:"items"`
}

// ImportYAML imports items from a YAML manifest.
func ImportYAML(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ImportYAMLBytes(data)
}

// ImportYAMLBytes imports items from YAML manifest content.
func ImportYAMLBytes(data []byte) ImportResult {
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		var list []model.ItemSpec
		if listErr := yaml.Unmarshal(data, &list); listErr != nil {
			return ImportResult{Errors: []string{fmt.Sprintf("Cannot parse YAML: %v", err)}}
		}
		m.Items = list
	}
	return validateManifest(m, "Item")
}

// ImportJSON imports items from a JSON manifest.
func ImportJSON(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ImportJSONBytes(data)
}

// ImportJSONBytes imports items from JSON manifest content.
func ImportJSONBytes(data []byte) ImportResult {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	var m Manifest
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &m.Items); err != nil {
			return ImportResult{Errors: []string{fmt.Sprintf("Cannot parse JSON: %v", err)}}
		}
	} else if err := json.Unmarshal(trimmed, &m); err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot parse JSON: %v", err)}}
	}
	return validateManifest(m, "Item")
}

func validateManifest(m Manifest, prefix string) ImportResult {
	result := ImportResult{Container: m.Container}

	if len(m.Items) == 0 {
		result.Errors = append(result.Errors, "No items found")
		return result
	}

	for i, item := range m.Items {
		rowLabel := fmt.Sprintf("%s %d", prefix, i+1)
		if item.Length <= 0 || item.Width <= 0 || item.Height <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Length, width, and height must be positive", rowLabel))
			continue
		}
		if item.Quantity < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Quantity must not be negative", rowLabel))
			continue
		}
		if item.Quantity == 0 {
			item.Quantity = 1
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Missing quantity, defaulting to 1", rowLabel))
		}
		if item.ID == "" {
			item.ID = uuid.New().String()[:8]
		}
		if item.Label == "" {
			item.Label = fmt.Sprintf("Item %d", len(result.Items)+1)
		}
		result.Items = append(result.Items, item)
	}

	if m.Container != nil && m.Container.IsZero() {
		result.Warnings = append(result.Warnings, "Container has no dimensions, ignoring")
		result.Container = nil
	}
	return result
}
