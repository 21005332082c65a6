// Package commands implements the boxfit command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/piwi3910/BoxFit/internal/config"
	"github.com/piwi3910/BoxFit/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	log     *logger.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "boxfit",
		Short: "3D bin packing for identical cuboid containers",
		Long: `BoxFit packs cuboid items into the fewest identical bins it can find.

Items are sorted longest edge first and placed first-fit; free space in a
bin is tracked as cuboids that are split around every placed item.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default searches ./boxfit.yaml, ~/.boxfit/boxfit.yaml, /etc/boxfit/boxfit.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")

	root.AddCommand(
		newPackCmd(a),
		newSplitCmd(a),
		newCompareCmd(a),
		newContainersCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// init loads configuration and sets up logging. Flags bound to viper keys
// override file and environment values.
func (a *app) init(cmd *cobra.Command) error {
	a.v = config.New(a.cfgFile)
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("invalid log configuration: %w", err)
	}
	a.log = log.Named("boxfit")
	logger.SetGlobal(a.log)

	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "scalar", cfg.Pack.Scalar)
	return nil
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"scalar":         "pack.scalar",
	"tolerance":      "pack.tolerance",
	"max-iterations": "pack.max_iterations",
	"min-leftover":   "pack.min_leftover",
	"inventory":      "inventory.path",
}

// bindFlags binds the flags set on the command line. Unset flags leave file
// and environment values alone.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("failed to bind --%s: %w", f.Name, err))
		}
	})
	return errs
}

// addPackFlags registers the packer settings flags shared by pack and compare.
func addPackFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("scalar", "float64", "numeric type for edges (int, int64, uint32, float32, float64)")
	flags.Float64("tolerance", 0, "treat edges within this distance as an exact fit")
	flags.Int("max-iterations", 0, "cap on placement attempts (0 = unlimited)")
	flags.Float64("min-leftover", 1, "smallest edge of a reported leftover")
}
