package out

import (
	"context"

	"daytrack/internal/modules/task/domain"
	"daytrack/internal/platform/dates"
)

// TaskStore persists the task collection by whole-value replacement: every
// mutation saves a complete, self-consistent new list.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

// TaskIndexProjector maintains the derived SQLite read model.
type TaskIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// AgendaWriter renders one day's plan to a markdown note.
type AgendaWriter interface {
	WriteAgenda(ctx context.Context, day dates.Day, buckets domain.Buckets, carryOver bool) (string, error)
}
