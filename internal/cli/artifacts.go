package cli

import (
	"github.com/spf13/cobra"

	"github.com/invectorlabs/bomsort/internal/engine"
)

var (
	placementOut    string
	placementSorted bool
	partsOut        string
	feedersOut      string
	feedersPasses   int
)

var placementCmd = &cobra.Command{
	Use:   "placement <bom-file>",
	Short: "Write the placement file (stdout by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &engine.GenerateRequest{
			Input:         args[0],
			PlacementPath: placementOut,
			Sorted:        placementSorted,
		}, 0)
	},
}

var partsCmd = &cobra.Command{
	Use:   "parts <bom-file>",
	Short: "Write the inventory pick list (stdout by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &engine.GenerateRequest{
			Input:         args[0],
			InventoryPath: partsOut,
		}, 0)
	},
}

var feedersCmd = &cobra.Command{
	Use:   "feeders <bom-file>",
	Short: "Write the suggested feeder list (stdout by default)",
	Long: `Assign part types to the 38-position front feeder row.

Parts are ranked by count and placed center-out so the most used parts sit
nearest the pick head. Part types used on more than half the candidate
feeders get a second feeder for double picking, and neighbouring feeders
holding the same part are swapped apart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &engine.GenerateRequest{
			Input:      args[0],
			FeederPath: feedersOut,
		}, feedersPasses)
	},
}

func init() {
	placementCmd.Flags().StringVarP(&placementOut, "output", "o", engine.StdoutPath, "Output file (- for stdout)")
	placementCmd.Flags().BoolVarP(&placementSorted, "sorted", "s", false, "Natural-sort rows by designator")

	partsCmd.Flags().StringVarP(&partsOut, "output", "o", engine.StdoutPath, "Output file (- for stdout)")

	feedersCmd.Flags().StringVarP(&feedersOut, "output", "o", engine.StdoutPath, "Output file (- for stdout)")
	feedersCmd.Flags().IntVar(&feedersPasses, "max-passes", 0, "Optimizer pass budget (overrides config)")
}
