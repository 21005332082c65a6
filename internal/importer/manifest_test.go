package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportYAMLBytes_Manifest(t *testing.T) {
	data := []byte(`
container:
  name: Crate
  length: 8
  width: 8
  height: 12
items:
  - label: deck
    length: 2
    width: 8
    height: 12
    quantity: 4
  - label: die
    length: 8
    width: 8
    height: 8
`)
	result := ImportYAMLBytes(data)
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)

	require.NotNil(t, result.Container)
	assert.Equal(t, "Crate", result.Container.Name)
	assert.Equal(t, [3]float64{8, 8, 12}, result.Container.Dims())

	assert.Equal(t, 4, result.Items[0].Quantity)
	assert.Equal(t, 1, result.Items[1].Quantity, "missing quantity defaults to one")
	assert.NotEmpty(t, result.Items[1].ID)
	assert.Len(t, result.Warnings, 1)
}

func TestImportYAMLBytes_BareList(t *testing.T) {
	data := []byte(`
- {label: a, length: 1, width: 2, height: 3, quantity: 2}
- {label: b, length: 4, width: 5, height: 6, quantity: 1}
`)
	result := ImportYAMLBytes(data)
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)
	assert.Nil(t, result.Container)
	assert.Equal(t, "b", result.Items[1].Label)
}

func TestImportYAMLBytes_Invalid(t *testing.T) {
	assert.NotEmpty(t, ImportYAMLBytes([]byte("items: [")).Errors)
	assert.NotEmpty(t, ImportYAMLBytes([]byte("")).Errors)
	assert.NotEmpty(t, ImportYAMLBytes([]byte("items: []")).Errors)

	result := ImportYAMLBytes([]byte("items:\n  - {label: bad, length: 0, width: 1, height: 1}\n  - {label: ok, length: 1, width: 1, height: 1, quantity: 1}\n"))
	assert.Len(t, result.Errors, 1)
	assert.Len(t, result.Items, 1)
}

func TestImportJSONBytes(t *testing.T) {
	result := ImportJSONBytes([]byte(`{"items":[{"label":"cube","length":1,"width":1,"height":1,"quantity":28}]}`))
	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 28, result.Items[0].Quantity)

	list := ImportJSONBytes([]byte(`[{"id":"x1","length":1,"width":2,"height":3,"quantity":1}]`))
	require.Empty(t, list.Errors)
	assert.Equal(t, "x1", list.Items[0].ID)
	assert.Equal(t, "Item 1", list.Items[0].Label)

	assert.NotEmpty(t, ImportJSONBytes([]byte(`{"items":`)).Errors)
	assert.NotEmpty(t, ImportJSONBytes([]byte(`[{"length":1,"width":1,"height":1,"quantity":-1}]`)).Errors)
}

func TestImportFile_Dispatch(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "items.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- {label: a, length: 1, width: 1, height: 1, quantity: 1}\n"), 0644))
	assert.True(t, ImportFile(yamlPath).OK())

	jsonPath := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"label":"a","length":1,"width":1,"height":1,"quantity":1}]`), 0644))
	assert.True(t, ImportFile(jsonPath).OK())

	csvPath := filepath.Join(dir, "items.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,1,1,1,1\n"), 0644))
	assert.True(t, ImportFile(csvPath).OK())

	result := ImportFile(filepath.Join(dir, "items.pdf"))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Unsupported")
}
