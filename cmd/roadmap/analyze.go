package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gdd-roadmap/config"
	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository/sqlite"
	analysisUC "gdd-roadmap/internal/analysis/usecase"
	"gdd-roadmap/internal/checklist"
	"gdd-roadmap/internal/render"
	"gdd-roadmap/pkg/datemath"
	"gdd-roadmap/pkg/llmprovider"
	"gdd-roadmap/pkg/log"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputFile := args[0]
	outFile, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	checklistFile, _ := cmd.Flags().GetString("checklist")

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l := log.NewNop()
	if verbose {
		l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	store, err := sqlite.NewMemory(l)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM providers: %w", err)
	}

	parser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		parser, _ = datemath.NewParser("UTC")
	}

	uc := analysisUC.New(l, llm, store, nil, parser, analysisUC.Config{
		Temperature:     cfg.Analysis.Temperature,
		MaxOutputTokens: cfg.Analysis.MaxOutputTokens,
		StateTTL:        cfg.Analysis.StateTTL,
		MaxUploadBytes:  cfg.Upload.MaxBytes(),
	})

	p := render.New(cmd.OutOrStdout(), trackWidth)
	p.Info("Analyzing %s ...", inputFile)

	f, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	sc, err := uc.CreateSession(ctx)
	if err != nil {
		return err
	}
	view, err := uc.Analyze(ctx, sc, analysis.AnalyzeInput{
		FileName: filepath.Base(inputFile),
		FileSize: info.Size(),
		Content:  f,
	})
	switch {
	case errors.Is(err, analysis.ErrMalformedResponse):
		return fmt.Errorf("the model answer could not be read as a roadmap, run the analysis again: %w", err)
	case errors.Is(err, analysis.ErrProviderUnavailable):
		return fmt.Errorf("the language model is unavailable, check the connection and API keys: %w", err)
	case err != nil:
		return err
	}

	printView(p, view.Analysis.Schema.Overview, view.Timeline, view.Board)
	p.Success("Analyzed with %s (%s)", view.Analysis.Provider, view.Analysis.Model)

	if checklistFile != "" {
		md := checklist.Format(view.Analysis.Schema.Overview.Title.String(), view.Board)
		if err := os.WriteFile(checklistFile, []byte(md), 0o644); err != nil {
			return fmt.Errorf("failed to write checklist: %w", err)
		}
		p.Success("Checklist written to %s", checklistFile)
	}

	if outFile == "" {
		return nil
	}
	out, err := uc.Export(ctx, sc, exportFormat(format, outFile))
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, out.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	p.Success("Roadmap written to %s", outFile)
	return nil
}

// exportFormat picks the flag value, else the output file extension.
func exportFormat(flag, outFile string) analysis.ExportFormat {
	if flag != "" {
		return analysis.ExportFormat(strings.ToLower(flag))
	}
	switch strings.ToLower(filepath.Ext(outFile)) {
	case ".yaml", ".yml":
		return analysis.ExportYAML
	default:
		return analysis.ExportJSON
	}
}
