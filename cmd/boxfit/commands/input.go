package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/BoxFit/internal/importer"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/internal/project"
	"github.com/spf13/cobra"
)

// packInput is the container and item list a command packs. Settings is set
// when the input came from a saved project.
type packInput struct {
	Container model.ContainerSpec
	Items     []model.ItemSpec
	Settings  *model.Settings
}

// inputFlags holds the item and container sources shared by pack and compare.
type inputFlags struct {
	bin       string
	preset    string
	items     []string
	project   string
	thickness float64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.bin, "bin", "", "bin edges as LxWxH")
	flags.StringVar(&f.preset, "preset", "", "container preset name or ID from the inventory")
	flags.StringArrayVar(&f.items, "item", nil, "item as ID=LxWxH or ID=LxWxH*QTY (repeatable)")
	flags.StringVar(&f.project, "project", "", "load container and items from a saved project")
	flags.Float64Var(&f.thickness, "thickness", importer.DefaultPanelThickness, "panel thickness for DXF imports")
	flags.String("inventory", "", "container inventory file")
}

// gather collects items from --project, file arguments and --item flags, and
// picks the container from --bin, --preset, the project or a manifest, in
// that order of preference.
func (f *inputFlags) gather(a *app, cmd *cobra.Command, files []string) (packInput, error) {
	var in packInput
	var fallback *model.ContainerSpec

	if f.project != "" {
		p, err := project.LoadProject(f.project)
		if err != nil {
			return in, err
		}
		in.Items = append(in.Items, p.Items...)
		in.Settings = &p.Settings
		if !p.Container.IsZero() {
			c := p.Container
			fallback = &c
		}
	}

	for _, path := range files {
		res := importer.ImportFileWithThickness(path, f.thickness)
		for _, w := range res.Warnings {
			a.log.Warn("import warning", "file", path, "detail", w)
		}
		if len(res.Errors) > 0 {
			return in, fmt.Errorf("%s: %s", path, strings.Join(res.Errors, "; "))
		}
		in.Items = append(in.Items, res.Items...)
		if res.Container != nil && fallback == nil {
			fallback = res.Container
		}
	}

	for _, raw := range f.items {
		spec, err := parseItemFlag(raw)
		if err != nil {
			return in, err
		}
		in.Items = append(in.Items, spec)
	}

	switch {
	case f.bin != "":
		dims, err := parseDims(f.bin)
		if err != nil {
			return in, fmt.Errorf("invalid --bin: %w", err)
		}
		in.Container = model.ContainerSpec{Length: dims[0], Width: dims[1], Height: dims[2]}
	case f.preset != "":
		inv, _, err := project.LoadOrCreateInventory(a.cfg.Inventory.Path)
		if err != nil {
			return in, err
		}
		cp := inv.Find(f.preset)
		if cp == nil {
			return in, fmt.Errorf("no container preset named %q", f.preset)
		}
		in.Container = cp.ToSpec()
	case fallback != nil:
		in.Container = *fallback
	default:
		return in, errors.New("no bin given: use --bin, --preset, --project or a manifest with a container")
	}

	a.log.Debug("input gathered",
		"container", fmt.Sprintf("%v", in.Container.Dims()),
		"lines", len(in.Items),
		"items", model.TotalQuantity(in.Items))
	return in, nil
}

// parseDims parses "LxWxH" into three positive edges.
func parseDims(s string) ([3]float64, error) {
	var dims [3]float64
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return dims, fmt.Errorf("%q: expected LxWxH", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return dims, fmt.Errorf("%q: invalid edge %q", s, p)
		}
		if v <= 0 {
			return dims, fmt.Errorf("%q: edges must be positive", s)
		}
		dims[i] = v
	}
	return dims, nil
}

// parseItemFlag parses "ID=LxWxH" with an optional "*QTY" suffix.
func parseItemFlag(s string) (model.ItemSpec, error) {
	id, rest, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return model.ItemSpec{}, fmt.Errorf("invalid --item %q: expected ID=LxWxH[*QTY]", s)
	}

	qty := 1
	if dimPart, qtyPart, hasQty := strings.Cut(rest, "*"); hasQty {
		n, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || n < 1 {
			return model.ItemSpec{}, fmt.Errorf("invalid --item %q: quantity must be a positive integer", s)
		}
		qty = n
		rest = dimPart
	}

	dims, err := parseDims(rest)
	if err != nil {
		return model.ItemSpec{}, fmt.Errorf("invalid --item %q: %w", s, err)
	}
	return model.NewItemSpec(strings.TrimSpace(id), dims[0], dims[1], dims[2], qty), nil
}

// toScalar converts float edges into T. Integer kinds truncate.
func toScalar[T model.Scalar](d [3]float64) [3]T {
	return [3]T{T(d[0]), T(d[1]), T(d[2])}
}

// settingsFor returns the packer settings for in. A saved project replays
// with its own settings, and only pack flags given on the command line
// override them. Other inputs use the loaded configuration.
func (a *app) settingsFor(cmd *cobra.Command, in packInput) model.Settings {
	cfg := a.cfg.Settings()
	if in.Settings == nil {
		return cfg
	}

	s := *in.Settings
	flags := cmd.Flags()
	if flags.Changed("scalar") {
		s.Scalar = cfg.Scalar
	}
	if flags.Changed("tolerance") {
		s.Tolerance = cfg.Tolerance
	}
	if flags.Changed("max-iterations") {
		s.MaxIterations = cfg.MaxIterations
	}
	if flags.Changed("min-leftover") {
		s.MinLeftover = cfg.MinLeftover
	}
	return s
}
