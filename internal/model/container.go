package model

import (
	"strings"

	"github.com/google/uuid"
)

// ContainerPreset represents a reusable bin definition such as a carton,
// a pallet footprint or a shipping container.
type ContainerPreset struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, length, width, height float64) ContainerPreset {
	return ContainerPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Length: length,
		Width:  width,
		Height: height,
	}
}

// Dims returns the preset's edges as a triple.
func (cp ContainerPreset) Dims() [3]float64 {
	return [3]float64{cp.Length, cp.Width, cp.Height}
}

// ToSpec converts the preset into the container description a project stores.
func (cp ContainerPreset) ToSpec() ContainerSpec {
	return ContainerSpec{Name: cp.Name, Length: cp.Length, Width: cp.Width, Height: cp.Height}
}

// Inventory holds the user's saved container presets.
type Inventory struct {
	Containers []ContainerPreset `json:"containers"`
}

// DefaultInventory returns an inventory populated with common defaults.
// Edges are in millimetres.
func DefaultInventory() Inventory {
	return Inventory{
		Containers: []ContainerPreset{
			NewContainerPreset("Small Box 305x229x152", 305, 229, 152),
			NewContainerPreset("Medium Box 457x305x305", 457, 305, 305),
			NewContainerPreset("Large Box 610x457x457", 610, 457, 457),
			NewContainerPreset("Euro Pallet 1200x800x1500", 1200, 800, 1500),
			NewContainerPreset("20ft Container", 5898, 2352, 2393),
			NewContainerPreset("40ft Container", 12032, 2352, 2393),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindByID(id string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
// Matching ignores case.
func (inv *Inventory) FindByName(name string) *ContainerPreset {
	for i := range inv.Containers {
		if strings.EqualFold(inv.Containers[i].Name, name) {
			return &inv.Containers[i]
		}
	}
	return nil
}

// Find looks a preset up by ID first, then by name.
func (inv *Inventory) Find(key string) *ContainerPreset {
	if cp := inv.FindByID(key); cp != nil {
		return cp
	}
	return inv.FindByName(key)
}

// Names returns the preset names in inventory order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.Containers))
	for i, c := range inv.Containers {
		names[i] = c.Name
	}
	return names
}

// Add appends a preset to the inventory.
func (inv *Inventory) Add(cp ContainerPreset) {
	inv.Containers = append(inv.Containers, cp)
}

// Remove deletes the preset matching key (ID or name) and reports whether
// one was found.
func (inv *Inventory) Remove(key string) bool {
	cp := inv.Find(key)
	if cp == nil {
		return false
	}
	id := cp.ID
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			inv.Containers = append(inv.Containers[:i], inv.Containers[i+1:]...)
			return true
		}
	}
	return false
}

// Merge adds the presets of other whose IDs are not already present and
// returns the number added.
func (inv *Inventory) Merge(other Inventory) int {
	ids := make(map[string]bool, len(inv.Containers))
	for _, c := range inv.Containers {
		ids[c.ID] = true
	}
	added := 0
	for _, c := range other.Containers {
		if !ids[c.ID] {
			inv.Containers = append(inv.Containers, c)
			ids[c.ID] = true
			added++
		}
	}
	return added
}
