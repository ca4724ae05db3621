package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/invectorlabs/bomsort/internal/config"
	"github.com/invectorlabs/bomsort/internal/engine"
)

var (
	genPlacement string
	genSorted    bool
	genParts     string
	genFeeders   string
	genDryRun    bool
	genMaxPasses int
)

var generateCmd = &cobra.Command{
	Use:   "generate <bom-file>",
	Short: "Generate any combination of placement, parts and feeder files",
	Long: `Read a CAD BOM and write the requested production files in one run.

  -b/--bom         placement file for the pick-and-place machine
  -p/--parts       inventory pick list, one row per part type
  -f/--feederlist  suggested feeder assignment for the front feeder row

Test points (TP*) and fiducials (FID*) are skipped. A failure in one output
does not prevent the others from being written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &engine.GenerateRequest{
			Input:         args[0],
			PlacementPath: genPlacement,
			Sorted:        genSorted,
			InventoryPath: genParts,
			FeederPath:    genFeeders,
			DryRun:        genDryRun,
		}, genMaxPasses)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genPlacement, "bom", "b", "", "Write the placement file to this path")
	generateCmd.Flags().BoolVarP(&genSorted, "sorted", "s", false, "Natural-sort placement rows by designator")
	generateCmd.Flags().StringVarP(&genParts, "parts", "p", "", "Write the inventory pick list to this path")
	generateCmd.Flags().StringVarP(&genFeeders, "feederlist", "f", "", "Write the feeder list to this path")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Compute everything without writing files")
	generateCmd.Flags().IntVar(&genMaxPasses, "max-passes", 0, "Optimizer pass budget (overrides config)")
}

// maxPassesOverride returns a config override for a --max-passes flag value.
func maxPassesOverride(n int) func(*config.Config) {
	if n == 0 {
		return nil
	}
	return func(cfg *config.Config) {
		cfg.Optimizer.MaxPasses = n
	}
}

// runGenerate executes a generate request and reports the outcome.
func runGenerate(cmd *cobra.Command, req *engine.GenerateRequest, maxPasses int) error {
	eng, logger, err := newEngine(cmd, maxPassesOverride(maxPasses))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	req.Stdout = cmd.OutOrStdout()
	result, err := eng.Generate(context.Background(), req)
	if result == nil {
		return err
	}

	if jsonOutput {
		if jerr := outputJSON(cmd.OutOrStdout(), result); jerr != nil {
			return jerr
		}
		return err
	}
	if writesStdout(req) {
		// keep piped CSV clean
		return err
	}

	printSummary(result)
	return err
}

func writesStdout(req *engine.GenerateRequest) bool {
	return req.PlacementPath == engine.StdoutPath ||
		req.InventoryPath == engine.StdoutPath ||
		req.FeederPath == engine.StdoutPath
}

func printSummary(result *engine.GenerateResult) {
	PrintSection("BOM")
	PrintLabelValue("Input", result.Input)
	PrintLabelValue("Fingerprint", result.Fingerprint)
	PrintLabelValue("Components", strconv.Itoa(result.Records))
	PrintLabelValue("Part types", strconv.Itoa(result.Parts))

	if result.Optimizer != nil {
		PrintSection("Feeder Optimizer")
		PrintLabelValue("Passes", strconv.Itoa(result.Optimizer.Passes))
		PrintLabelValue("Swaps", strconv.Itoa(result.Optimizer.Swaps))
		if result.Travel != nil {
			PrintLabelValue("Mean pick travel", fmt.Sprintf("%.2f ± %.2f slots", result.Travel.MeanDistance, result.Travel.StdDevDistance))
		}
		if !result.Optimizer.Converged {
			PrintWarning(fmt.Sprintf("Optimizer did not converge: %s left next to each other",
				PrintCount(result.Optimizer.Collisions, "same-part pair", "same-part pairs")))
		}
	}

	PrintSection("Artifacts")
	rows := make([][]string, 0, len(result.Artifacts))
	written := 0
	for _, a := range result.Artifacts {
		status := "written"
		switch {
		case a.Error != "":
			status = "failed"
			PrintError(fmt.Sprintf("%s: %s", a.Kind, a.Error))
		case !a.Written:
			status = "dry run"
		default:
			written++
		}
		rows = append(rows, []string{string(a.Kind), a.Path, strconv.Itoa(a.Rows), status})
	}
	PrintTable([]string{"Kind", "Path", "Rows", "Status"}, rows)
	fmt.Println()

	if result.DryRun {
		PrintInfo(fmt.Sprintf("Dry run: would write %s", PrintCount(len(result.Artifacts), "file", "files")))
		return
	}
	PrintSuccess(fmt.Sprintf("Wrote %s", PrintCount(written, "file", "files")))
}
