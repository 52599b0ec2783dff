package main

import (
	"os"

	"github.com/spf13/cobra"

	"gdd-roadmap/internal/render"
)

var (
	configFile string
	trackWidth int
	verbose    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		render.New(os.Stderr, 0).Error("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Roadmap - turn a game design document into a timeline and task board",
		Long: `Roadmap sends a game design document to a generative language model and prints
the resulting project overview, quarter timeline and task board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: search ./config, ., /etc/app)")
	rootCmd.PersistentFlags().IntVarP(&trackWidth, "width", "w", render.DefaultTrackWidth, "Timeline track width in cells")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log provider calls")

	// Analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a design document (.txt, .md, .docx)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringP("out", "o", "", "Write the roadmap export to this file")
	analyzeCmd.Flags().StringP("format", "f", "", "Export format (json, yaml); default from the --out extension")
	analyzeCmd.Flags().String("checklist", "", "Write the task board as a markdown checklist to this file")
	rootCmd.AddCommand(analyzeCmd)

	// Render command
	renderCmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a saved model answer or roadmap export without calling the model",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringP("progress", "p", "", "Markdown checklist to read task completion from")
	rootCmd.AddCommand(renderCmd)

	// Months command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "months <duration text>",
		Short: "Show how a duration estimate maps to months and quarters",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMonths,
	})

	// Calendar auth command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "calendar-auth <credentials.json>",
		Short: "Authorize Google Calendar access and save token.json next to the credentials",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalendarAuth,
	})

	return rootCmd
}
