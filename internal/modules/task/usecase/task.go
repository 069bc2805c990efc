package usecase

import (
	"context"
	"fmt"

	settingsin "daytrack/internal/modules/settings/port/in"
	"daytrack/internal/modules/task/domain"
	"daytrack/internal/modules/task/dto"
	taskin "daytrack/internal/modules/task/port/in"
	"daytrack/internal/modules/task/service"
	"daytrack/internal/platform/dates"
	apperrors "daytrack/internal/platform/errors"
)

type Interactor struct {
	svc      *service.TaskService
	settings settingsin.Usecase
}

func NewInteractor(svc *service.TaskService, settings settingsin.Usecase) taskin.Usecase {
	return &Interactor{svc: svc, settings: settings}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateTaskInput) (dto.TaskOutput, error) {
	due, err := parseOptionalDay(input.Date)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.Create(ctx, input.Title, input.Description, due)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Edit(ctx context.Context, input dto.EditTaskInput) (dto.TaskOutput, error) {
	due, err := parseOptionalDay(input.Date)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	task, err := i.svc.Edit(ctx, input.TaskID, input.Title, input.Description, due)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) ToggleCompletion(ctx context.Context, taskID string) (dto.TaskOutput, error) {
	task, err := i.svc.ToggleCompletion(ctx, taskID)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Delete(ctx context.Context, taskID string) error {
	return i.svc.Delete(ctx, taskID)
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toOutput(task))
	}
	return out, nil
}

// Plan resolves "today" (or an explicit date), reads the carry-over
// preference, and returns the classified day view.
func (i *Interactor) Plan(ctx context.Context, input dto.PlanInput) (dto.DayPlanOutput, error) {
	today, err := i.resolveDay(input.Date)
	if err != nil {
		return dto.DayPlanOutput{}, err
	}
	carryOver := true
	if i.settings != nil {
		prefs, err := i.settings.Get(ctx)
		if err != nil {
			return dto.DayPlanOutput{}, err
		}
		carryOver = prefs.CarryOver
	}
	buckets, tasks, err := i.svc.Plan(ctx, today)
	if err != nil {
		return dto.DayPlanOutput{}, err
	}
	return dto.DayPlanOutput{
		Date:         today.String(),
		CarryOver:    carryOver,
		Active:       toOutputs(buckets.ActiveView(carryOver)),
		Upcoming:     toOutputs(buckets.Upcoming),
		Completed:    toOutputs(buckets.Completed),
		OverdueCount: len(buckets.OverdueUnfinished),
		AllDone:      domain.AllDueTodayComplete(tasks, today),
	}, nil
}

func (i *Interactor) ExportAgenda(ctx context.Context, input dto.PlanInput) (dto.AgendaOutput, error) {
	today, err := i.resolveDay(input.Date)
	if err != nil {
		return dto.AgendaOutput{}, err
	}
	carryOver := true
	if i.settings != nil {
		prefs, err := i.settings.Get(ctx)
		if err != nil {
			return dto.AgendaOutput{}, err
		}
		carryOver = prefs.CarryOver
	}
	path, err := i.svc.ExportAgenda(ctx, today, carryOver)
	if err != nil {
		return dto.AgendaOutput{}, err
	}
	return dto.AgendaOutput{Date: today.String(), Path: path}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) resolveDay(raw string) (dates.Day, error) {
	if raw == "" {
		return i.svc.Today(), nil
	}
	day, err := dates.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	return day, nil
}

func parseOptionalDay(raw string) (dates.Day, error) {
	if raw == "" {
		return "", nil
	}
	day, err := dates.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	return day, nil
}

func toOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.Due.String(),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}

func toOutputs(tasks []domain.Task) []dto.TaskOutput {
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toOutput(task))
	}
	return out
}
