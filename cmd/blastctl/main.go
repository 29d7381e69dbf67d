// Command blastctl answers blast-radius questions offline, straight from a
// menu file, without the API or the inventory database.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/holymole/core/internal/blastradius"
	"github.com/holymole/core/internal/menu"
	"github.com/holymole/core/internal/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var menuFile string

	root := &cobra.Command{
		Use:   "blastctl",
		Short: "Inspect the menu composition graph",
		Long: `Inspect the menu composition graph and compute ingredient blast radius.

The embedded Holy Mole menu is used unless --menu points at a YAML file
with the same shape.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&menuFile, "menu", "",
		"YAML menu file (default: embedded Holy Mole menu)")

	root.AddCommand(newRadiusCmd(&menuFile), newMenuCmd(&menuFile))
	return root
}

func newRadiusCmd(menuFile *string) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "radius <name>",
		Short: "Print everything that depends on an ingredient, sub-recipe or menu item",
		Long: `Print the blast radius of a node as JSON: every node that transitively
depends on it, the edges walked, the affected menu items and the revenue
per hour at risk.

Names are matched case-insensitively. An unknown name prints an empty
result rather than failing.

Examples:
  blastctl radius Lime
  blastctl radius "spicy mayo" --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(*menuFile)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				encoder.SetIndent("", "  ")
			}
			return encoder.Encode(engine.Compute(args[0]))
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}

func newMenuCmd(menuFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List every node of the composition graph with its kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := loadEngine(*menuFile)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tNAME\tREVENUE/HR")
			for _, node := range engine.Nodes() {
				rev := "-"
				if node.Type == models.KindMenuItem {
					rev = fmt.Sprintf("%.2f", engine.RevenuePerHour(node.ID))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", node.Type, node.Label, rev)
			}
			return tw.Flush()
		},
	}
}

func loadEngine(path string) (*blastradius.Engine, error) {
	m, err := menu.Load(path)
	if err != nil {
		return nil, err
	}
	engine, err := blastradius.New(*m)
	if err != nil {
		return nil, fmt.Errorf("build menu graph: %w", err)
	}
	return engine, nil
}
