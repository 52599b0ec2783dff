package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/checklist"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/render"
	"gdd-roadmap/internal/timeline"
	"gdd-roadmap/pkg/extract"
)

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	schema, err := loadSchema(args[0], data)
	if err != nil {
		return err
	}

	board := analysis.NewBoard(schema, nil)
	progressFile, _ := cmd.Flags().GetString("progress")
	var progress string
	if progressFile != "" {
		md, err := os.ReadFile(progressFile)
		if err != nil {
			return err
		}
		progress = string(md)
		board = analysis.NewBoard(schema, checklist.States(board, progress))
	}

	p := render.New(cmd.OutOrStdout(), trackWidth)
	printView(p, schema.Overview, timeline.Build(schema), board)
	if progress != "" && board.Total > 0 && board.Completed == board.Total && checklist.IsFullyCompleted(progress) {
		p.Success("All %d tasks done", board.Total)
	}
	return nil
}

// savedRoadmap accepts both a raw model answer ("overview") and an export ("project").
type savedRoadmap struct {
	Overview model.Overview   `json:"overview" yaml:"overview"`
	Project  model.Overview   `json:"project" yaml:"project"`
	Roadmap  []model.Phase    `json:"roadmap" yaml:"roadmap"`
	Tasks    model.Categories `json:"tasks" yaml:"tasks"`
}

func loadSchema(name string, data []byte) (model.ProjectSchema, error) {
	var saved savedRoadmap
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &saved); err != nil {
			return model.ProjectSchema{}, fmt.Errorf("read %s: %w", name, err)
		}
	default:
		if err := extract.Decode(string(data), &saved); err != nil {
			return model.ProjectSchema{}, fmt.Errorf("read %s: %w", name, err)
		}
	}

	overview := saved.Overview
	if overview == (model.Overview{}) {
		overview = saved.Project
	}
	return model.ProjectSchema{
		Overview: overview,
		Roadmap:  saved.Roadmap,
		Tasks:    saved.Tasks,
	}, nil
}

func printView(p *render.Printer, o model.Overview, tl timeline.Timeline, b analysis.Board) {
	p.Overview(o)
	p.Timeline(tl)
	if len(b.Categories) == 0 {
		p.Warn("No tasks in this roadmap")
		return
	}
	p.Board(b)
}
