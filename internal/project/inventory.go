package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BoxFit/internal/config"
	"github.com/piwi3910/BoxFit/internal/model"
)

// DefaultInventoryPath returns the default file path for the inventory file.
// This is located at ~/.boxfit/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(config.DefaultDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if inv.Containers == nil {
		inv.Containers = []model.ContainerPreset{}
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	return inv, nil
}

// LoadOrCreateInventory loads the inventory from path, or from the default
// path when path is empty. A missing file is created with default entries.
func LoadOrCreateInventory(path string) (model.Inventory, string, error) {
	if path == "" {
		path = DefaultInventoryPath()
	}
	inv, err := LoadInventory(path)
	return inv, path, err
}

// ImportInventory merges the presets in a user-specified JSON file into the
// existing inventory. Duplicate IDs are skipped. It returns the merged
// inventory and the number of presets added.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, 0, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, 0, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	added := existing.Merge(imported)
	return existing, added, nil
}
