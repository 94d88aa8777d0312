// Package main provides the entry point for the activity planner CLI
// and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "activity_agent",
	Short: "Medical school Work & Activities planner",
	Long:  "activity_agent manages a med-school Work & Activities section: readiness scoring, competency radar, AI-assisted drafting, and resume import, served over a REST API or run locally.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
