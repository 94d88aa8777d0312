package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/activity-planner/internal/report"
	"github.com/jonathan/activity-planner/internal/scoring"
	"github.com/jonathan/activity-planner/internal/types"
	"github.com/spf13/cobra"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score <activities.json>",
	Short: "Score a local activities file",
	Long:  `Compute the readiness score and competency radar for a JSON file holding an array of activity records, without a database or server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit machine-readable JSON instead of the report")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read activities file: %w", err)
	}

	var records []types.Activity
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse activities file: %w", err)
	}

	readiness := scoring.CalculateReadiness(records)
	radar := scoring.CalculateRadar(records)
	best, deficits := scoring.BestFit(radar)

	if scoreJSON {
		out := map[string]any{
			"readiness":      readiness,
			"radar":          radar,
			"best_archetype": best,
			"deficits":       deficits,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printer := report.NewPrinter(os.Stdout)
	printer.PrintReadiness(readiness)
	fmt.Println()
	printer.PrintRadar(radar, best, deficits)
	return nil
}
