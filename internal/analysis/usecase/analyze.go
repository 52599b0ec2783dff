package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/pkg/document"
	"gdd-roadmap/pkg/extract"
	"gdd-roadmap/pkg/llmprovider"
)

// Analyze reads the document, asks the model for a roadmap and saves it as the session's
// current analysis, discarding the previous one and its task progress.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalysisView, error) {
	if err := uc.checkSession(ctx, sc); err != nil {
		return analysis.AnalysisView{}, err
	}

	if input.FileSize > 0 {
		if err := document.Validate(input.FileName, input.FileSize, uc.cfg.MaxUploadBytes); err != nil {
			return analysis.AnalysisView{}, err
		}
	}
	doc, err := document.Read(input.FileName, input.Content, uc.cfg.MaxUploadBytes)
	if err != nil {
		return analysis.AnalysisView{}, err
	}

	uc.l.Infof(ctx, "analysis.usecase.Analyze: session=%s file=%s mime=%s chars=%d",
		sc.SessionID, doc.Name, doc.MIME, len(doc.Text))

	schema, resp, err := uc.generate(ctx, doc.Text)
	if err != nil {
		return analysis.AnalysisView{}, err
	}

	a, err := uc.repo.SaveAnalysis(ctx, repository.SaveAnalysisOptions{
		ID:        uuid.NewString(),
		SessionID: sc.SessionID,
		FileName:  doc.Name,
		Provider:  resp.ProviderName,
		Model:     resp.ModelName,
		Schema:    schema,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: save: %v", err)
		return analysis.AnalysisView{}, err
	}

	uc.l.Infof(ctx, "analysis.usecase.Analyze: session=%s analysis=%s categories=%d",
		sc.SessionID, a.ID, len(schema.Tasks))

	return uc.view(ctx, a)
}

// generate calls the model and decodes its answer.
func (uc *implUseCase) generate(ctx context.Context, text string) (model.ProjectSchema, *llmprovider.Response, error) {
	req := llmprovider.UserPrompt(analysis.BuildAnalysisPrompt(text))
	req.Temperature = uc.cfg.Temperature
	req.MaxTokens = uc.cfg.MaxOutputTokens
	req.JSONResponse = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.generate: %v", err)
		if ctx.Err() != nil {
			return model.ProjectSchema{}, nil, ctx.Err()
		}
		// A chain timeout stays visible as context.DeadlineExceeded.
		return model.ProjectSchema{}, nil, fmt.Errorf("%w: %w", analysis.ErrProviderUnavailable, err)
	}

	var schema model.ProjectSchema
	if err := extract.Decode(resp.Content.Text(), &schema); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.generate: provider=%s finish=%s: %v",
			resp.ProviderName, resp.FinishReason, err)
		return model.ProjectSchema{}, nil, err
	}
	return schema, resp, nil
}
