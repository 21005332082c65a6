package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultPanelThickness is the thickness given to DXF panels when the caller
// does not name one.
const DefaultPanelThickness = 18.0

// SupportedExtensions lists the file extensions ImportFile understands.
var SupportedExtensions = []string{".csv", ".tsv", ".txt", ".xlsx", ".xls", ".yaml", ".yml", ".json", ".dxf"}

// ImportFile picks an importer by file extension. DXF panels get
// DefaultPanelThickness.
func ImportFile(path string) ImportResult {
	return ImportFileWithThickness(path, DefaultPanelThickness)
}

// ImportFileWithThickness is ImportFile with an explicit DXF panel thickness.
func ImportFileWithThickness(path string, thickness float64) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ImportCSV(path)
	case ".xlsx", ".xls":
		return ImportExcel(path)
	case ".yaml", ".yml":
		return ImportYAML(path)
	case ".json":
		return ImportJSON(path)
	case ".dxf":
		return ImportDXF(path, thickness)
	default:
		return ImportResult{Errors: []string{
			fmt.Sprintf("Unsupported file type %q (supported: %s)", filepath.Ext(path), strings.Join(SupportedExtensions, ", ")),
		}}
	}
}
