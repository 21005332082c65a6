package model

// ContainerSpec is the bin a project packs into, in its persisted form.
type ContainerSpec struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Dims returns the container edges as a triple.
func (cs ContainerSpec) Dims() [3]float64 {
	return [3]float64{cs.Length, cs.Width, cs.Height}
}

// IsZero reports whether no container has been chosen yet.
func (cs ContainerSpec) IsZero() bool {
	return cs.Length == 0 && cs.Width == 0 && cs.Height == 0
}

// ProjectResult is the saved outcome of the last packing run.
type ProjectResult struct {
	RunID      string     `json:"run_id"`
	PackedAt   string     `json:"packed_at"`
	Bins       [][]string `json:"bins"`
	Efficiency float64    `json:"efficiency"`
}

// Project ties everything together for save/load.
type Project struct {
	Version   string         `json:"version"`
	Name      string         `json:"name"`
	Container ContainerSpec  `json:"container"`
	Items     []ItemSpec     `json:"items"`
	Settings  Settings       `json:"settings"`
	Result    *ProjectResult `json:"result,omitempty"`
}

// ProjectVersion is written into every saved project file.
const ProjectVersion = "1.0.0"

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Version:  ProjectVersion,
		Name:     "Untitled",
		Items:    []ItemSpec{},
		Settings: DefaultSettings(),
	}
}
