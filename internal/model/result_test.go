package model

import (
	"math"
	"testing"
)

func sampleResult() PackResult[int] {
	container := NewCuboid(3, 3, 3)
	return PackResult[int]{
		Container: container,
		Bins: []BinResult[int]{
			{
				ID:        "b1",
				Container: container,
				Items: []Item[int]{
					NewItem("a", [3]int{3, 3, 2}),
					NewItem("b", [3]int{1, 3, 3}),
				},
			},
			{
				ID:        "b2",
				Container: container,
				Items:     []Item[int]{NewItem("c", [3]int{1, 1, 1})},
				FreeSpace: []Cuboid[int]{NewCuboid(1, 1, 2), NewCuboid(1, 2, 3), NewCuboid(2, 3, 3)},
			},
		},
	}
}

func TestPackResultGroups(t *testing.T) {
	groups := sampleResult().Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0] != "a" || groups[0][1] != "b" {
		t.Errorf("unexpected first group %v", groups[0])
	}
	if len(groups[1]) != 1 || groups[1][0] != "c" {
		t.Errorf("unexpected second group %v", groups[1])
	}
}

func TestBinResultVolumes(t *testing.T) {
	r := sampleResult()
	full := r.Bins[0]
	if full.UsedVolume() != 27 {
		t.Errorf("expected used volume 27, got %.0f", full.UsedVolume())
	}
	if math.Abs(full.Efficiency()-100) > 1e-9 {
		t.Errorf("expected 100%% efficiency, got %.2f", full.Efficiency())
	}

	partial := r.Bins[1]
	if partial.UsedVolume()+partial.FreeVolume() != partial.TotalVolume() {
		t.Errorf("used %.0f + free %.0f should equal total %.0f",
			partial.UsedVolume(), partial.FreeVolume(), partial.TotalVolume())
	}
}

func TestPackResultTotals(t *testing.T) {
	r := sampleResult()
	if r.ItemCount() != 3 {
		t.Errorf("expected 3 items, got %d", r.ItemCount())
	}
	want := 28.0 / 54.0 * 100
	if math.Abs(r.TotalEfficiency()-want) > 1e-9 {
		t.Errorf("expected efficiency %.4f, got %.4f", want, r.TotalEfficiency())
	}
	if (PackResult[int]{}).TotalEfficiency() != 0 {
		t.Error("empty result should report zero efficiency")
	}
}

func TestDetectLeftovers(t *testing.T) {
	leftovers := DetectLeftovers(sampleResult(), 2)
	if len(leftovers) != 1 {
		t.Fatalf("expected 1 leftover with shortest edge >= 2, got %d", len(leftovers))
	}
	if leftovers[0].Dims != [3]float64{2, 3, 3} || leftovers[0].BinIndex != 1 {
		t.Errorf("unexpected leftover %+v", leftovers[0])
	}

	all := DetectLeftovers(sampleResult(), 1)
	if len(all) != 3 {
		t.Fatalf("expected 3 leftovers, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Volume() > all[i-1].Volume() {
			t.Error("leftovers should be sorted by volume descending")
		}
	}
	if TotalLeftoverVolume(all) != 26 {
		t.Errorf("expected total leftover volume 26, got %.0f", TotalLeftoverVolume(all))
	}
}

func TestEstimateBins(t *testing.T) {
	items := make([]Item[int], 28)
	for i := range items {
		items[i] = NewItem("u", [3]int{1, 1, 1})
	}
	est := EstimateBins(NewCuboid(3, 3, 3), items)
	if est.TotalItemVolume != 28 {
		t.Errorf("expected item volume 28, got %.0f", est.TotalItemVolume)
	}
	if est.BinsNeededMin != 2 {
		t.Errorf("expected 2 bins minimum, got %d", est.BinsNeededMin)
	}
}

func TestEstimateBinsZeroContainer(t *testing.T) {
	est := EstimateBins(NewCuboid(0, 3, 3), []Item[int]{NewItem("u", [3]int{1, 1, 1})})
	if est.BinsNeededMin != 0 || est.BinVolume != 0 {
		t.Errorf("expected empty estimate for zero-volume container, got %+v", est)
	}
}
