package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
)

const defaultExportTitle = "project"

var whitespace = regexp.MustCompile(`\s+`)

// Export renders the current analysis as JSON or YAML.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, format analysis.ExportFormat) (analysis.ExportOutput, error) {
	if format == "" {
		format = analysis.ExportJSON
	}
	if format != analysis.ExportJSON && format != analysis.ExportYAML {
		return analysis.ExportOutput{}, analysis.ErrInvalidExportFormat
	}

	a, err := uc.current(ctx, sc)
	if err != nil {
		return analysis.ExportOutput{}, err
	}

	doc := analysis.ExportDocument{
		Project:    a.Schema.Overview,
		Roadmap:    a.Schema.Roadmap,
		Tasks:      a.Schema.Tasks,
		ExportDate: uc.now().UTC(),
	}
	if doc.Roadmap == nil {
		doc.Roadmap = []model.Phase{}
	}

	out := analysis.ExportOutput{FileName: exportFileName(a.Schema.Overview.Title.String(), format)}
	switch format {
	case analysis.ExportYAML:
		out.ContentType = "application/yaml"
		out.Data, err = yaml.Marshal(doc)
	default:
		out.ContentType = "application/json"
		out.Data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Export: %v", err)
		return analysis.ExportOutput{}, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}

// exportFileName builds roadmap_<title>.<ext> with whitespace runs replaced by underscores.
func exportFileName(title string, format analysis.ExportFormat) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultExportTitle
	}
	title = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return -1
		}
		return r
	}, title)
	return fmt.Sprintf("roadmap_%s.%s", whitespace.ReplaceAllString(title, "_"), format)
}
