package usecase

import (
	"context"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository"
	"gdd-roadmap/internal/model"
)

// Board returns the kanban view of the current analysis.
func (uc *implUseCase) Board(ctx context.Context, sc model.Scope) (analysis.Board, error) {
	a, err := uc.current(ctx, sc)
	if err != nil {
		return analysis.Board{}, err
	}
	states, err := uc.repo.ListTaskStates(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Board: %v", err)
		return analysis.Board{}, err
	}
	return analysis.NewBoard(a.Schema, states), nil
}

// SetTaskCompletion flags one task, addressed by category key and position.
func (uc *implUseCase) SetTaskCompletion(ctx context.Context, sc model.Scope, input analysis.SetTaskInput) (analysis.Board, error) {
	a, err := uc.current(ctx, sc)
	if err != nil {
		return analysis.Board{}, err
	}

	c, ok := a.Schema.Tasks.Get(input.Category)
	if !ok || input.Index < 0 || input.Index >= len(c.Tasks) {
		return analysis.Board{}, analysis.ErrTaskNotFound
	}

	err = uc.repo.SetTaskState(ctx, repository.SetTaskStateOptions{
		SessionID: sc.SessionID,
		Category:  input.Category,
		Index:     input.Index,
		Completed: input.Completed,
		UpdatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.SetTaskCompletion: %v", err)
		return analysis.Board{}, err
	}

	return uc.Board(ctx, sc)
}
