package engine

import (
	"fmt"

	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/pkg/logger"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult[T model.Scalar] struct {
	Scenario     ComparisonScenario
	Result       model.PackResult[T]
	BinsUsed     int
	ItemCount    int
	WastePercent float64
	LowerBound   int
	Err          error
}

// CompareScenarios packs the same items once per scenario and returns the
// results in scenario order. A failing scenario records its error and the
// rest still run.
func CompareScenarios[T model.Scalar](scenarios []ComparisonScenario, container model.Cuboid[T], items []model.Item[T], log *logger.Logger) []ComparisonResult[T] {
	results := make([]ComparisonResult[T], 0, len(scenarios))
	estimate := model.EstimateBins(container, items)

	for _, scenario := range scenarios {
		p := NewFromSettings(scenario.Settings, WithLogger[T](log))
		result, err := p.Pack(container, items)

		cr := ComparisonResult[T]{
			Scenario:   scenario,
			Result:     result,
			LowerBound: estimate.BinsNeededMin,
			Err:        err,
		}
		if err == nil {
			cr.BinsUsed = len(result.Bins)
			cr.ItemCount = result.ItemCount()
			cr.WastePercent = 100.0 - result.TotalEfficiency()
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates comparison scenarios based on the current
// settings, varying the exact-fit tolerance to show what-if alternatives.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	if base.Tolerance != 0 {
		exact := base
		exact.Tolerance = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Exact Fit",
			Settings: exact,
		})
	} else if !base.Scalar.IsInteger() {
		tolerant := base
		tolerant.Tolerance = 1e-6
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Tolerant Fit (%g)", tolerant.Tolerance),
			Settings: tolerant,
		})
	}

	// Integer runs can still absorb a one-unit mismatch.
	if base.Scalar.IsInteger() && base.Tolerance < 1 {
		loose := base
		loose.Tolerance = 1
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Tolerant Fit (1 unit)",
			Settings: loose,
		})
	}

	return scenarios
}
