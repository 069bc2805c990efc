package out

import (
	"context"

	"daytrack/internal/modules/goal/domain"
)

// GoalStore persists the goal collection by whole-value replacement.
type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
}

// GoalIndexProjector maintains the derived SQLite read model of goals and
// their current phase.
type GoalIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertGoal(ctx context.Context, goal domain.Goal) error
}
