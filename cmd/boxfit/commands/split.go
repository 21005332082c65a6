package commands

import (
	"fmt"
	"io"

	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split CONTAINER ITEM",
		Short: "Show the free space left after placing one item",
		Long: `Place ITEM in CONTAINER and print the remaining free-space cuboids,
smallest volume first. Both are given as LxWxH.`,
		Example: `  boxfit split 10x10x10 4x4x4`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := parseDims(args[0])
			if err != nil {
				return fmt.Errorf("invalid container: %w", err)
			}
			item, err := parseDims(args[1])
			if err != nil {
				return fmt.Errorf("invalid item: %w", err)
			}

			settings := a.cfg.Settings()
			w := cmd.OutOrStdout()
			switch settings.Scalar {
			case model.ScalarInt:
				return splitWith[int](w, container, item, settings.Tolerance)
			case model.ScalarInt64:
				return splitWith[int64](w, container, item, settings.Tolerance)
			case model.ScalarUint32:
				return splitWith[uint32](w, container, item, settings.Tolerance)
			case model.ScalarFloat32:
				return splitWith[float32](w, container, item, settings.Tolerance)
			default:
				return splitWith[float64](w, container, item, settings.Tolerance)
			}
		},
	}

	flags := cmd.Flags()
	flags.String("scalar", "float64", "numeric type for edges (int, int64, uint32, float32, float64)")
	flags.Float64("tolerance", 0, "treat edges within this distance as an exact fit")
	return cmd
}

func splitWith[T model.Scalar](w io.Writer, container, item [3]float64, tol float64) error {
	c := model.CuboidOf(toScalar[T](container))
	it := model.CuboidOf(toScalar[T](item))

	pieces, err := engine.Split(c, it, T(tol))
	if err != nil {
		return err
	}
	if len(pieces) == 0 {
		_, err := fmt.Fprintln(w, "no free space left")
		return err
	}
	for _, p := range pieces {
		if _, err := fmt.Fprintf(w, "%s\tvolume %v\n", p, p.Volume()); err != nil {
			return err
		}
	}
	return nil
}
