package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

// CreateSession opens a new session with a random id.
func (uc *implUseCase) CreateSession(ctx context.Context) (model.Scope, error) {
	id := uuid.NewString()
	if err := uc.repo.CreateSession(ctx, id, uc.now()); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.CreateSession: %v", err)
		return model.Scope{}, err
	}
	uc.l.Infof(ctx, "analysis.usecase.CreateSession: session=%s", id)
	return model.Scope{SessionID: id}, nil
}

// Current restores the saved analysis. Analyses older than the state TTL are discarded.
func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (analysis.AnalysisView, error) {
	a, err := uc.current(ctx, sc)
	if err != nil {
		return analysis.AnalysisView{}, err
	}
	return uc.view(ctx, a)
}

// Reset forgets the session's analysis and task progress.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	if err := uc.checkSession(ctx, sc); err != nil {
		return err
	}
	if err := uc.repo.DeleteAnalysis(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Reset: %v", err)
		return err
	}
	return nil
}

// Timeline returns the quarter-gridded timeline of the current analysis.
func (uc *implUseCase) Timeline(ctx context.Context, sc model.Scope) (timeline.Timeline, error) {
	a, err := uc.current(ctx, sc)
	if err != nil {
		return timeline.Timeline{}, err
	}
	return timeline.Build(a.Schema), nil
}

func (uc *implUseCase) checkSession(ctx context.Context, sc model.Scope) error {
	if strings.TrimSpace(sc.SessionID) == "" {
		return analysis.ErrSessionNotFound
	}
	exists, err := uc.repo.SessionExists(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.checkSession: %v", err)
		return err
	}
	if !exists {
		return analysis.ErrSessionNotFound
	}
	return nil
}

// current loads the live analysis of a session, expiring stale ones.
func (uc *implUseCase) current(ctx context.Context, sc model.Scope) (analysis.Analysis, error) {
	if err := uc.checkSession(ctx, sc); err != nil {
		return analysis.Analysis{}, err
	}

	a, err := uc.repo.GetAnalysis(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.current: %v", err)
		return analysis.Analysis{}, err
	}
	if a.ID == "" {
		return analysis.Analysis{}, analysis.ErrAnalysisNotFound
	}

	if uc.cfg.StateTTL > 0 && uc.now().Sub(a.CreatedAt) > uc.cfg.StateTTL {
		uc.l.Infof(ctx, "analysis.usecase.current: analysis %s expired, discarding", a.ID)
		if err := uc.repo.DeleteAnalysis(ctx, sc.SessionID); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.current: delete expired: %v", err)
		}
		return analysis.Analysis{}, analysis.ErrAnalysisNotFound
	}
	return a, nil
}

func (uc *implUseCase) view(ctx context.Context, a analysis.Analysis) (analysis.AnalysisView, error) {
	states, err := uc.repo.ListTaskStates(ctx, a.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.view: %v", err)
		return analysis.AnalysisView{}, err
	}
	return analysis.AnalysisView{
		Analysis: a,
		Timeline: timeline.Build(a.Schema),
		Board:    analysis.NewBoard(a.Schema, states),
	}, nil
}
