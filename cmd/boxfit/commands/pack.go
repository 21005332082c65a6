package commands

import (
	"fmt"
	"io"

	"github.com/piwi3910/BoxFit/internal/engine"
	"github.com/piwi3910/BoxFit/internal/export"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/internal/project"
	"github.com/piwi3910/BoxFit/pkg/logger"
	"github.com/spf13/cobra"
)

type packOptions struct {
	input  inputFlags
	format string
	pdf    string
	xlsx   string
	labels string
	save   string
}

func newPackCmd(a *app) *cobra.Command {
	opts := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack [FILE...]",
		Short: "Pack items into the fewest bins",
		Long: `Pack items into identical bins and print the bins in the order they
were opened, with item IDs in placement order.

Items come from CSV, Excel, YAML, JSON or DXF files, from --item flags and
from a saved --project.`,
		Example: `  boxfit pack --bin 8x8x12 --item deck=2x8x12*4 --item die=8x8x8
  boxfit pack --preset "Euro Pallet 1200x800x1500" items.csv --pdf report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPack(cmd, opts, args)
		},
	}

	opts.input.register(cmd)
	addPackFlags(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "o", "text", "output format (text, ids, json)")
	flags.StringVar(&opts.pdf, "pdf", "", "also write a PDF report to this path")
	flags.StringVar(&opts.xlsx, "xlsx", "", "also write an Excel workbook to this path")
	flags.StringVar(&opts.labels, "labels", "", "also write QR-coded item labels to this path")
	flags.StringVar(&opts.save, "save", "", "save the input and result as a project file")
	return cmd
}

func (a *app) runPack(cmd *cobra.Command, opts *packOptions, files []string) error {
	switch opts.format {
	case "text", "ids", "json":
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	in, err := opts.input.gather(a, cmd, files)
	if err != nil {
		return err
	}

	settings := a.settingsFor(cmd, in)
	proj := model.NewProject()
	proj.Name = in.Container.Name
	proj.Container = in.Container
	proj.Items = in.Items
	proj.Settings = settings

	var report export.Report
	switch settings.Scalar {
	case model.ScalarInt:
		report, err = packWith[int](in, settings, a.log, &proj)
	case model.ScalarInt64:
		report, err = packWith[int64](in, settings, a.log, &proj)
	case model.ScalarUint32:
		report, err = packWith[uint32](in, settings, a.log, &proj)
	case model.ScalarFloat32:
		report, err = packWith[float32](in, settings, a.log, &proj)
	default:
		report, err = packWith[float64](in, settings, a.log, &proj)
	}
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), opts.format, report); err != nil {
		return err
	}

	if opts.pdf != "" {
		if err := export.ExportPDF(opts.pdf, report); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		a.log.Info("wrote PDF report", "path", opts.pdf)
	}
	if opts.xlsx != "" {
		if err := export.ExportExcel(opts.xlsx, report); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		a.log.Info("wrote workbook", "path", opts.xlsx)
	}
	if opts.labels != "" {
		if err := export.ExportLabels(opts.labels, report); err != nil {
			return fmt.Errorf("failed to write labels: %w", err)
		}
		a.log.Info("wrote labels", "path", opts.labels)
	}
	if opts.save != "" {
		if err := project.SaveProject(opts.save, proj); err != nil {
			return err
		}
		a.log.Info("saved project", "path", opts.save)
	}
	return nil
}

// packWith runs the packer with edges of type T and records the outcome on
// proj.
func packWith[T model.Scalar](in packInput, settings model.Settings, log *logger.Logger, proj *model.Project) (export.Report, error) {
	container := model.CuboidOf(toScalar[T](in.Container.Dims()))
	items := model.ExpandItems[T](in.Items)

	p := engine.NewFromSettings(settings, engine.WithLogger[T](log))
	res, err := p.Pack(container, items)
	if err != nil {
		return export.Report{}, err
	}

	report := export.NewReport(res, settings)
	project.RecordResult(proj, report.RunID, res)
	return report, nil
}

func writeReport(w io.Writer, format string, r export.Report) error {
	switch format {
	case "ids":
		return export.WriteIDs(w, r.Groups())
	case "json":
		return export.WriteJSON(w, r)
	default:
		return export.WriteText(w, r)
	}
}
