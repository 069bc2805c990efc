package in

import (
	"context"

	"daytrack/internal/modules/task/dto"
	taskin "daytrack/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, title, description, date string) (dto.TaskOutput, error) {
	return h.usecase.Create(ctx, dto.CreateTaskInput{Title: title, Description: description, Date: date})
}

func (h CLIHandler) Edit(ctx context.Context, taskID, title, description, date string) (dto.TaskOutput, error) {
	return h.usecase.Edit(ctx, dto.EditTaskInput{TaskID: taskID, Title: title, Description: description, Date: date})
}

func (h CLIHandler) ToggleCompletion(ctx context.Context, taskID string) (dto.TaskOutput, error) {
	return h.usecase.ToggleCompletion(ctx, taskID)
}

func (h CLIHandler) Delete(ctx context.Context, taskID string) error {
	return h.usecase.Delete(ctx, taskID)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Plan(ctx context.Context, date string) (dto.DayPlanOutput, error) {
	return h.usecase.Plan(ctx, dto.PlanInput{Date: date})
}

func (h CLIHandler) ExportAgenda(ctx context.Context, date string) (dto.AgendaOutput, error) {
	return h.usecase.ExportAgenda(ctx, dto.PlanInput{Date: date})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
