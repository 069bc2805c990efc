package service

import (
	"context"
	"fmt"
	"strings"

	"daytrack/internal/modules/goal/domain"
	goalout "daytrack/internal/modules/goal/port/out"
	"daytrack/internal/platform/clock"
	apperrors "daytrack/internal/platform/errors"
	"daytrack/internal/platform/id"
)

type GoalService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     goalout.GoalStore
	projector goalout.GoalIndexProjector
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalout.GoalStore, projector goalout.GoalIndexProjector) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store, projector: projector}
}

func (s *GoalService) Create(ctx context.Context, title string) (domain.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Goal{}, fmt.Errorf("%w: goal title is required", apperrors.ErrInvalidInput)
	}
	goal := domain.Goal{
		ID:        s.idGen.New(),
		Title:     title,
		Phases:    []domain.Phase{},
		CreatedAt: s.clock.Now(),
	}
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	goals = append([]domain.Goal{goal}, goals...)
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// AppendPhase adds a pending phase at the end. The cursor never moves here;
// the first phase of an empty goal is current simply because the cursor
// already points at index zero.
func (s *GoalService) AppendPhase(ctx context.Context, goalID, title string) (domain.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Goal{}, fmt.Errorf("%w: phase title is required", apperrors.ErrInvalidInput)
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return domain.Goal{}, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	goal := goals[idx]
	goal.Phases = append(goal.Phases, domain.Phase{ID: s.idGen.New(), Title: title})
	goals[idx] = goal
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// Advance completes the current phase and reports whether the cursor moved.
func (s *GoalService) Advance(ctx context.Context, goalID string) (domain.Goal, bool, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return domain.Goal{}, false, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	goal, progressed := goals[idx].Advance()
	goals[idx] = goal
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, false, err
	}
	if err := s.projector.UpsertGoal(ctx, goal); err != nil {
		return domain.Goal{}, false, err
	}
	return goal, progressed, nil
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.store.Load(ctx)
}

func (s *GoalService) CurrentPhases(ctx context.Context) ([]domain.CurrentPhaseView, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ProjectCurrentPhases(goals), nil
}

func (s *GoalService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, goal := range goals {
		if err := s.projector.UpsertGoal(ctx, goal); err != nil {
			return err
		}
	}
	return nil
}

func indexOf(goals []domain.Goal, id string) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
