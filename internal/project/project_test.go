package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BoxFit/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "crate.boxfit.json")

	p := model.NewProject()
	p.Name = "Crate"
	p.Container = model.ContainerSpec{Name: "crate", Length: 8, Width: 8, Height: 12}
	p.Items = append(p.Items, model.NewItemSpec("deck", 2, 8, 12, 4))
	p.Settings.Tolerance = 0.5

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Version != model.ProjectVersion {
		t.Errorf("expected version %s, got %s", model.ProjectVersion, loaded.Version)
	}
	if loaded.Name != "Crate" {
		t.Errorf("expected name Crate, got %s", loaded.Name)
	}
	if loaded.Container.Dims() != [3]float64{8, 8, 12} {
		t.Errorf("unexpected container %v", loaded.Container.Dims())
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Quantity != 4 {
		t.Errorf("unexpected items %+v", loaded.Items)
	}
	if loaded.Settings.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %f", loaded.Settings.Tolerance)
	}
	if loaded.Result != nil {
		t.Error("expected no stored result")
	}
}

func TestLoadProjectDefaultsMissingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	if err := os.WriteFile(path, []byte(`{"version":"1.0.0","name":"old"}`), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if p.Settings != model.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", p.Settings)
	}
	if p.Items == nil {
		t.Error("expected non-nil items")
	}
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadProject(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}

	noVersion := filepath.Join(dir, "noversion.json")
	if err := os.WriteFile(noVersion, []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(noVersion); err == nil {
		t.Error("expected error for missing version")
	}
}

func TestRecordResult(t *testing.T) {
	container := model.NewCuboid(4, 4, 4)
	res := model.PackResult[int]{
		Container: container,
		Bins: []model.BinResult[int]{{
			Container: container,
			Items: []model.Item[int]{
				model.NewItem("a", [3]int{4, 4, 2}),
				model.NewItem("b", [3]int{4, 4, 2}),
			},
		}},
	}

	p := model.NewProject()
	RecordResult(&p, "run1", res)

	if p.Result == nil {
		t.Fatal("expected result to be recorded")
	}
	if p.Result.RunID != "run1" || p.Result.PackedAt == "" {
		t.Errorf("unexpected result header %+v", p.Result)
	}
	if len(p.Result.Bins) != 1 || len(p.Result.Bins[0]) != 2 || p.Result.Bins[0][1] != "b" {
		t.Errorf("unexpected bins %v", p.Result.Bins)
	}
	if p.Result.Efficiency != 100 {
		t.Errorf("expected efficiency 100, got %f", p.Result.Efficiency)
	}
}
