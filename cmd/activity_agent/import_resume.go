package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/activity-planner/internal/ingest"
	"github.com/jonathan/activity-planner/internal/llm"
	"github.com/jonathan/activity-planner/internal/report"
	"github.com/jonathan/activity-planner/internal/types"
	"github.com/spf13/cobra"
)

var (
	importApplication string
	importJSON        bool
)

var importResumeCmd = &cobra.Command{
	Use:   "import-resume <resume-file>",
	Short: "Extract activity drafts from a resume",
	Long:  `Extract activity drafts from a resume file (pdf, docx, html, or plain text) using the AI extractor. Requires GEMINI_API_KEY.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImportResume,
}

func init() {
	importResumeCmd.Flags().StringVar(&importApplication, "application", "AMCAS", "Application system (AMCAS or AACOMAS)")
	importResumeCmd.Flags().BoolVar(&importJSON, "json", false, "Emit machine-readable JSON instead of the report")
	rootCmd.AddCommand(importResumeCmd)
}

func runImportResume(_ *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	app := types.ApplicationType(importApplication)
	if app != types.AMCAS && app != types.AACOMAS {
		return fmt.Errorf("invalid application system: %s", importApplication)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := ingest.ExtractText(args[0], data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	if text == "" {
		return fmt.Errorf("resume contains no extractable text")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	drafts, err := llm.NewService(client).ParseResume(ctx, text, app)
	if err != nil {
		return fmt.Errorf("resume parsing failed: %w", err)
	}

	if importJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(drafts)
	}

	report.NewPrinter(os.Stdout).PrintDrafts(drafts)
	return nil
}
