package service

import (
	"context"
	"fmt"
	"strings"

	"daytrack/internal/modules/task/domain"
	taskout "daytrack/internal/modules/task/port/out"
	"daytrack/internal/platform/clock"
	"daytrack/internal/platform/dates"
	apperrors "daytrack/internal/platform/errors"
	"daytrack/internal/platform/id"
)

type TaskService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     taskout.TaskStore
	projector taskout.TaskIndexProjector
	agenda    taskout.AgendaWriter
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store taskout.TaskStore, projector taskout.TaskIndexProjector, agenda taskout.AgendaWriter) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store, projector: projector, agenda: agenda}
}

// Today is the current calendar date as the scheduler sees it. It is always
// recomputed, never stored.
func (s *TaskService) Today() dates.Day {
	return dates.FromTime(s.clock.Now())
}

func (s *TaskService) Create(ctx context.Context, title, description string, due dates.Day) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: task title is required", apperrors.ErrInvalidInput)
	}
	if due.IsZero() {
		due = s.Today()
	}
	task := domain.Task{
		ID:          s.idGen.New(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Due:         due,
		CreatedAt:   s.clock.Now(),
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	tasks = append([]domain.Task{task}, tasks...)
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Edit updates title, description, and date. An empty new title keeps the
// existing one; the description is always replaced, empty included; a zero
// date keeps the existing date.
func (s *TaskService) Edit(ctx context.Context, taskID, title, description string, due dates.Day) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, fmt.Errorf("%w: task %s", apperrors.ErrNotFound, taskID)
	}
	task := tasks[idx]
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		task.Title = trimmed
	}
	task.Description = strings.TrimSpace(description)
	if !due.IsZero() {
		task.Due = due
	}
	tasks[idx] = task
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ToggleCompletion flips the completion flag. This is the only place the
// completion timestamp is stamped or cleared.
func (s *TaskService) ToggleCompletion(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return domain.Task{}, fmt.Errorf("%w: task %s", apperrors.ErrNotFound, taskID)
	}
	task := tasks[idx]
	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
	} else {
		now := s.clock.Now()
		task.Completed = true
		task.CompletedAt = &now
	}
	tasks[idx] = task
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	if err := s.projector.UpsertTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete removes unconditionally; a missing id is a no-op, not an error.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return nil
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	if err := s.store.Save(ctx, tasks); err != nil {
		return err
	}
	return s.projector.DeleteTask(ctx, taskID)
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.Load(ctx)
}

// Plan classifies the current task set against the given day.
func (s *TaskService) Plan(ctx context.Context, today dates.Day) (domain.Buckets, []domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Buckets{}, nil, err
	}
	return domain.Classify(tasks, today), tasks, nil
}

func (s *TaskService) ExportAgenda(ctx context.Context, today dates.Day, carryOver bool) (string, error) {
	buckets, _, err := s.Plan(ctx, today)
	if err != nil {
		return "", err
	}
	return s.agenda.WriteAgenda(ctx, today, buckets, carryOver)
}

func (s *TaskService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if err := s.projector.UpsertTask(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

func indexOf(tasks []domain.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
