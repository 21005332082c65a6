package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/piwi3910/BoxFit/internal/model"
	"github.com/piwi3910/BoxFit/internal/project"
	"github.com/spf13/cobra"
)

func newContainersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "containers",
		Aliases: []string{"presets"},
		Short:   "Manage saved container presets",
	}
	cmd.PersistentFlags().String("inventory", "", "container inventory file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List container presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, _, err := project.LoadOrCreateInventory(a.cfg.Inventory.Path)
				if err != nil {
					return err
				}
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.AppendHeader(table.Row{"ID", "Name", "Length", "Width", "Height"})
				for _, c := range inv.Containers {
					t.AppendRow(table.Row{c.ID, c.Name, c.Length, c.Width, c.Height})
				}
				t.Render()
				return nil
			},
		},
		&cobra.Command{
			Use:   "add NAME LxWxH",
			Short: "Add a container preset",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				dims, err := parseDims(args[1])
				if err != nil {
					return err
				}
				inv, path, err := project.LoadOrCreateInventory(a.cfg.Inventory.Path)
				if err != nil {
					return err
				}
				if inv.FindByName(args[0]) != nil {
					return fmt.Errorf("a preset named %q already exists", args[0])
				}
				cp := model.NewContainerPreset(args[0], dims[0], dims[1], dims[2])
				inv.Add(cp)
				if err := project.SaveInventory(path, inv); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", cp.Name, cp.ID)
				return err
			},
		},
		&cobra.Command{
			Use:   "remove NAME|ID",
			Short: "Remove a container preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, path, err := project.LoadOrCreateInventory(a.cfg.Inventory.Path)
				if err != nil {
					return err
				}
				if !inv.Remove(args[0]) {
					return fmt.Errorf("no container preset named %q", args[0])
				}
				if err := project.SaveInventory(path, inv); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return err
			},
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Merge presets from an inventory file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, path, err := project.LoadOrCreateInventory(a.cfg.Inventory.Path)
				if err != nil {
					return err
				}
				merged, added, err := project.ImportInventory(args[0], inv)
				if err != nil {
					return err
				}
				if err := project.SaveInventory(path, merged); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d preset(s)\n", added)
				return err
			},
		},
	)
	return cmd
}
