package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/internal/project"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes boxfit with args in an isolated home directory and returns
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestPack_IDsGolden(t *testing.T) {
	out, err := run(t, "pack", "--scalar", "int", "--format", "ids",
		"--bin", "8x8x12", "--item", "deck=2x8x12*4", "--item", "die=8x8x8")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "pack_ids", []byte(out))
}

func TestSplit_Golden(t *testing.T) {
	out, err := run(t, "split", "--scalar", "int", "1x2x2", "1x1x1")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "split_unit_cube", []byte(out))
}

func TestPack_ManifestFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "crate.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
container: {name: crate, length: 8, width: 8, height: 12}
items:
  - {label: deck, length: 12, width: 2, height: 8, quantity: 4}
  - {label: die, length: 8, width: 8, height: 8, quantity: 1}
`), 0644))

	out, err := run(t, "pack", "-o", "ids", manifest)
	require.NoError(t, err)
	assert.Equal(t, "bin 1: deck deck deck deck\nbin 2: die\n", out)
}

func TestPack_TextAndExports(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "report.pdf")
	xlsx := filepath.Join(dir, "report.xlsx")
	labels := filepath.Join(dir, "labels.pdf")
	saved := filepath.Join(dir, "run.json")

	out, err := run(t, "pack", "--bin", "3x3x3", "--item", "cube=1x1x1*28",
		"--pdf", pdf, "--xlsx", xlsx, "--labels", labels, "--save", saved)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "lower bound 2 bins")

	for _, p := range []string{pdf, xlsx, labels, saved} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}

	proj, err := project.LoadProject(saved)
	require.NoError(t, err)
	require.NotNil(t, proj.Result)
	require.Len(t, proj.Result.Bins, 2)
	assert.Len(t, proj.Result.Bins[0], 27)
	assert.Equal(t, []string{"cube"}, proj.Result.Bins[1])

	// The saved project packs again without other inputs.
	out, err = run(t, "pack", "-o", "ids", "--project", saved)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "bin 2: cube\n"), out)
}

func TestPack_JSON(t *testing.T) {
	out, err := run(t, "pack", "-o", "json", "--bin", "4x4x4", "--item", "a=4x4x2*2")
	require.NoError(t, err)
	assert.Contains(t, out, `"item_count": 2`)
}

func TestPack_Errors(t *testing.T) {
	_, err := run(t, "pack", "--item", "a=1x1x1")
	assert.ErrorContains(t, err, "no bin given")

	_, err = run(t, "pack", "--bin", "1x1x1", "--item", "big=2x1x1", "--item", "huge=9x9x9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "big")
	assert.Contains(t, err.Error(), "huge")

	_, err = run(t, "pack", "--bin", "1x1", "--item", "a=1x1x1")
	assert.ErrorContains(t, err, "invalid --bin")

	_, err = run(t, "pack", "--bin", "1x1x1", "--item", "a=1x1x1", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "pack", "--bin", "1x1x1", "--item", "a=1x1x1", "--scalar", "complex")
	assert.ErrorContains(t, err, "pack.scalar")
}

func TestPack_Preset(t *testing.T) {
	out, err := run(t, "pack", "-o", "ids", "--preset", "small box 305x229x152", "--item", "book=200x150x30*5")
	require.NoError(t, err)
	assert.Equal(t, "bin 1: book book book book book\n", out)

	_, err = run(t, "pack", "--preset", "nope", "--item", "a=1x1x1")
	assert.ErrorContains(t, err, "no container preset")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--bin", "3x3x3", "--item", "cube=1x1x1*28")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Tolerant Fit")
}

func TestContainers(t *testing.T) {
	inv := filepath.Join(t.TempDir(), "inventory.json")

	out, err := run(t, "containers", "add", "--inventory", inv, "Crate", "8x8x12")
	require.NoError(t, err)
	assert.Contains(t, out, "added Crate")

	_, err = run(t, "containers", "add", "--inventory", inv, "crate", "1x1x1")
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "containers", "list", "--inventory", inv)
	require.NoError(t, err)
	assert.Contains(t, out, "Crate")

	out, err = run(t, "pack", "-o", "ids", "--inventory", inv, "--preset", "Crate", "--item", "die=8x8x8")
	require.NoError(t, err)
	assert.Equal(t, "bin 1: die\n", out)

	out, err = run(t, "containers", "remove", "--inventory", inv, "Crate")
	require.NoError(t, err)
	assert.Contains(t, out, "removed Crate")

	_, err = run(t, "containers", "remove", "--inventory", inv, "Crate")
	assert.ErrorContains(t, err, "no container preset")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "boxfit "+Version+"\n", out)
}

func TestParseItemFlag(t *testing.T) {
	spec, err := parseItemFlag("deck=2x8x12*4")
	require.NoError(t, err)
	assert.Equal(t, "deck", spec.Label)
	assert.Equal(t, [3]float64{2, 8, 12}, spec.Dims())
	assert.Equal(t, 4, spec.Quantity)

	spec, err = parseItemFlag("die = 8X8X8")
	require.NoError(t, err)
	assert.Equal(t, 1, spec.Quantity)

	for _, bad := range []string{"8x8x8", "=1x1x1", "a=1x1", "a=1x1x1*0", "a=1x-1x1", "a=1x1x1*x"} {
		_, err := parseItemFlag(bad)
		assert.Error(t, err, bad)
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "boxfit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("pack:\n  scalar: int\n  max_iterations: 1\n"), 0644))

	_, err := run(t, "pack", "--config", cfg, "--bin", "2x2x2", "--item", "a=1x1x1*3")
	assert.ErrorContains(t, err, "iteration limit")

	out, err := run(t, "pack", "--config", cfg, "--max-iterations", "0", "-o", "ids", "--bin", "2x2x2", "--item", "a=1x1x1*3")
	require.NoError(t, err)
	assert.Equal(t, "bin 1: a a a\n", out)
}

func TestPack_ShippingContainerOverflowsUint32(t *testing.T) {
	_, err := run(t, "pack", "--scalar", "uint32", "--preset", "20ft Container", "--item", "crate=1000x1000x1000")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrVolumeOverflow)

	out, err := run(t, "pack", "--scalar", "int64", "--preset", "20ft Container", "--item", "crate=1000x1000x1000", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"efficiency": 3.01`)
}

func TestPack_ProjectSettingsReplayed(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "limited.json")
	p := model.NewProject()
	p.Container = model.ContainerSpec{Length: 2, Width: 2, Height: 2}
	p.Items = []model.ItemSpec{model.NewItemSpec("a", 1, 1, 1, 3)}
	p.Settings.Scalar = model.ScalarInt
	p.Settings.MaxIterations = 1
	require.NoError(t, project.SaveProject(saved, p))

	_, err := run(t, "pack", "--project", saved)
	assert.ErrorIs(t, err, engine.ErrIterationLimit)

	out, err := run(t, "pack", "--project", saved, "--max-iterations", "0", "-o", "ids")
	require.NoError(t, err)
	assert.Equal(t, "bin 1: a a a\n", out)
}
