package in

import (
	"context"

	"daytrack/internal/modules/task/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateTaskInput) (dto.TaskOutput, error)
	Edit(ctx context.Context, input dto.EditTaskInput) (dto.TaskOutput, error)
	ToggleCompletion(ctx context.Context, taskID string) (dto.TaskOutput, error)
	Delete(ctx context.Context, taskID string) error
	List(ctx context.Context) ([]dto.TaskOutput, error)
	Plan(ctx context.Context, input dto.PlanInput) (dto.DayPlanOutput, error)
	ExportAgenda(ctx context.Context, input dto.PlanInput) (dto.AgendaOutput, error)
	Reindex(ctx context.Context) error
}
