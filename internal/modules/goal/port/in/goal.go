package in

import (
	"context"

	"daytrack/internal/modules/goal/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateGoalInput) (dto.GoalOutput, error)
	AppendPhase(ctx context.Context, input dto.AppendPhaseInput) (dto.GoalOutput, error)
	Advance(ctx context.Context, goalID string) (dto.AdvanceOutput, error)
	List(ctx context.Context) ([]dto.GoalOutput, error)
	CurrentPhases(ctx context.Context) ([]dto.CurrentPhaseOutput, error)
	Reindex(ctx context.Context) error
}
