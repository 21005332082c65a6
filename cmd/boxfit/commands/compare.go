package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/pkg/logger"
	"github.com/spf13/cobra"
)

// comparisonRow is one scenario outcome, independent of the scalar type.
type comparisonRow struct {
	Name       string
	Tolerance  float64
	Bins       int
	Items      int
	Waste      float64
	LowerBound int
	Err        error
}

func newCompareCmd(a *app) *cobra.Command {
	input := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "compare [FILE...]",
		Short: "Compare bin counts across fit tolerances",
		Long: `Pack the same items under the current settings and a few what-if
alternatives, then print bins used, waste and the volume lower bound for each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input.gather(a, cmd, args)
			if err != nil {
				return err
			}

			settings := a.settingsFor(cmd, in)
			scenarios := engine.BuildDefaultScenarios(settings)

			var rows []comparisonRow
			switch settings.Scalar {
			case model.ScalarInt:
				rows = compareWith[int](scenarios, in, a.log)
			case model.ScalarInt64:
				rows = compareWith[int64](scenarios, in, a.log)
			case model.ScalarUint32:
				rows = compareWith[uint32](scenarios, in, a.log)
			case model.ScalarFloat32:
				rows = compareWith[float32](scenarios, in, a.log)
			default:
				rows = compareWith[float64](scenarios, in, a.log)
			}
			return writeComparison(cmd.OutOrStdout(), rows)
		},
	}

	input.register(cmd)
	addPackFlags(cmd)
	return cmd
}

func compareWith[T model.Scalar](scenarios []engine.ComparisonScenario, in packInput, log *logger.Logger) []comparisonRow {
	container := model.CuboidOf(toScalar[T](in.Container.Dims()))
	items := model.ExpandItems[T](in.Items)

	results := engine.CompareScenarios(scenarios, container, items, log)
	rows := make([]comparisonRow, len(results))
	for i, r := range results {
		rows[i] = comparisonRow{
			Name:       r.Scenario.Name,
			Tolerance:  r.Scenario.Settings.Tolerance,
			Bins:       r.BinsUsed,
			Items:      r.ItemCount,
			Waste:      r.WastePercent,
			LowerBound: r.LowerBound,
			Err:        r.Err,
		}
	}
	return rows
}

func writeComparison(w io.Writer, rows []comparisonRow) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Scenario", "Tolerance", "Bins", "Items", "Waste", "Lower bound"})
	for _, r := range rows {
		if r.Err != nil {
			t.AppendRow(table.Row{r.Name, r.Tolerance, "error", r.Err.Error(), "", r.LowerBound})
			continue
		}
		t.AppendRow(table.Row{r.Name, r.Tolerance, r.Bins, r.Items, fmt.Sprintf("%.1f%%", r.Waste), r.LowerBound})
	}
	t.Render()
	return nil
}
