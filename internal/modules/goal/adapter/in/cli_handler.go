package in

import (
	"context"

	"daytrack/internal/modules/goal/dto"
	goalin "daytrack/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, title string) (dto.GoalOutput, error) {
	return h.usecase.Create(ctx, dto.CreateGoalInput{Title: title})
}

func (h CLIHandler) AppendPhase(ctx context.Context, goalID, title string) (dto.GoalOutput, error) {
	return h.usecase.AppendPhase(ctx, dto.AppendPhaseInput{GoalID: goalID, Title: title})
}

func (h CLIHandler) Advance(ctx context.Context, goalID string) (dto.AdvanceOutput, error) {
	return h.usecase.Advance(ctx, goalID)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) CurrentPhases(ctx context.Context) ([]dto.CurrentPhaseOutput, error) {
	return h.usecase.CurrentPhases(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
