package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// buildTestReport packs four decks and a die into 8x8x12 bins.
func buildTestReport(t *testing.T) Report {
	t.Helper()

	items := []model.Item[int]{
		model.NewItem("deck", [3]int{2, 8, 12}),
		model.NewItem("deck", [3]int{2, 8, 12}),
		model.NewItem("deck", [3]int{2, 8, 12}),
		model.NewItem("deck", [3]int{2, 8, 12}),
		model.NewItem("die", [3]int{8, 8, 8}),
	}
	res, err := engine.New[int]().Pack(model.NewCuboid(8, 8, 12), items)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	return NewReport(res, model.DefaultSettings())
}

// ─── Report Tests ──────────────────────────────────────────

func TestNewReport(t *testing.T) {
	r := buildTestReport(t)

	if r.RunID == "" {
		t.Error("expected a run ID")
	}
	if len(r.Bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(r.Bins))
	}
	if r.ItemCount != 5 {
		t.Errorf("expected 5 items, got %d", r.ItemCount)
	}
	if r.Bins[0].Index != 1 || r.Bins[1].Index != 2 {
		t.Errorf("expected 1-based bin indices, got %d and %d", r.Bins[0].Index, r.Bins[1].Index)
	}
	if r.Bins[0].Efficiency != 100 {
		t.Errorf("expected first bin full, got %.1f%%", r.Bins[0].Efficiency)
	}
	if len(r.Bins[0].FreeSpace) != 0 {
		t.Errorf("expected no free space in first bin, got %v", r.Bins[0].FreeSpace)
	}
	if r.Bins[1].FreeSpace[0] != [3]float64{4, 8, 8} {
		t.Errorf("expected leftover 4x8x8 in second bin, got %v", r.Bins[1].FreeSpace)
	}
	// 768 + 512 over 768 per bin.
	if r.Estimate.BinsNeededMin != 2 {
		t.Errorf("expected lower bound 2, got %d", r.Estimate.BinsNeededMin)
	}
	if len(r.Leftovers) != 1 || r.Leftovers[0].BinIndex != 1 {
		t.Errorf("expected one leftover in bin index 1, got %+v", r.Leftovers)
	}

	groups := r.Groups()
	if strings.Join(groups[0], " ") != "deck deck deck deck" || strings.Join(groups[1], " ") != "die" {
		t.Errorf("unexpected groups %v", groups)
	}
}

func TestNewReport_Empty(t *testing.T) {
	r := NewReport(model.PackResult[float64]{Container: model.NewCuboid(1.0, 1.0, 1.0)}, model.DefaultSettings())
	if len(r.Bins) != 0 || r.Bins == nil {
		t.Errorf("expected empty non-nil bins, got %v", r.Bins)
	}
	if r.Leftovers == nil {
		t.Error("expected non-nil leftovers")
	}
}

// ─── Text Output Tests ─────────────────────────────────────

func TestWriteIDs(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIDs(&buf, [][]string{{"a", "b"}, {"c"}}); err != nil {
		t.Fatalf("WriteIDs returned error: %v", err)
	}
	want := "bin 1: a b\nbin 2: c\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, buildTestReport(t)); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	out := strings.ToLower(buf.String())
	for _, want := range []string{"deck deck deck deck", "die", "100.0%", "leftover space", "4 x 8 x 8", "256"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestReport_LeftoverVolume(t *testing.T) {
	r := buildTestReport(t)
	if got := r.LeftoverVolume(); got != 256 {
		t.Errorf("expected leftover volume 256, got %g", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, buildTestReport(t)); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	var decoded struct {
		Bins []struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"bins"`
		ItemCount int `json:"item_count"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ItemCount != 5 || len(decoded.Bins) != 2 {
		t.Errorf("unexpected decoded report %+v", decoded)
	}
	if decoded.Bins[1].Items[0].ID != "die" {
		t.Errorf("expected die in second bin, got %q", decoded.Bins[1].Items[0].ID)
	}
}

// ─── Excel Export Tests ────────────────────────────────────

func TestExportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := ExportExcel(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Bins", "Items", "Leftovers"}
	if strings.Join(sheets, ",") != strings.Join(want, ",") {
		t.Errorf("expected sheets %v, got %v", want, sheets)
	}

	rows, err := f.GetRows("Items")
	if err != nil {
		t.Fatalf("failed to read Items sheet: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected header plus 5 item rows, got %d", len(rows))
	}
	if rows[5][2] != "die" {
		t.Errorf("expected die on last row, got %v", rows[5])
	}
}

func TestExportExcel_NoBins(t *testing.T) {
	if err := ExportExcel(filepath.Join(t.TempDir(), "x.xlsx"), Report{}); err == nil {
		t.Error("expected error for empty report")
	}
}

// ─── PDF Export Tests ──────────────────────────────────────

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := ExportPDF(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file does not start with PDF header")
	}
}

func TestExportPDF_NoBins(t *testing.T) {
	if err := ExportPDF(filepath.Join(t.TempDir(), "x.pdf"), Report{}); err == nil {
		t.Error("expected error for empty report")
	}
}

func TestExportPDF_ManyItems(t *testing.T) {
	items := make([]model.Item[int], 64)
	for i := range items {
		items[i] = model.NewItem("cube", [3]int{1, 1, 1})
	}
	res, err := engine.New[int]().Pack(model.NewCuboid(4, 4, 4), items)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "many.pdf")
	if err := ExportPDF(path, NewReport(res, model.DefaultSettings())); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

// ─── Label Tests ───────────────────────────────────────────

func TestCollectLabelInfos(t *testing.T) {
	r := buildTestReport(t)
	labels := CollectLabelInfos(r)

	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	last := labels[4]
	if last.ItemID != "die" || last.BinIndex != 2 || last.Position != 1 {
		t.Errorf("unexpected label %+v", last)
	}
	if last.Dims != [3]float64{8, 8, 8} {
		t.Errorf("unexpected dims %v", last.Dims)
	}
	if last.RunID != r.ShortRunID() {
		t.Errorf("expected run %s, got %s", r.ShortRunID(), last.RunID)
	}

	data, err := json.Marshal(last)
	if err != nil {
		t.Fatalf("failed to marshal label: %v", err)
	}
	if !strings.Contains(string(data), `"item":"die"`) {
		t.Errorf("unexpected label JSON %s", data)
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("labels file is empty")
	}
}

func TestExportLabels_NoItems(t *testing.T) {
	if err := ExportLabels(filepath.Join(t.TempDir(), "x.pdf"), Report{}); err == nil {
		t.Error("expected error for empty report")
	}
}
