package usecase

import (
	"context"

	"daytrack/internal/modules/goal/domain"
	"daytrack/internal/modules/goal/dto"
	goalin "daytrack/internal/modules/goal/port/in"
	"daytrack/internal/modules/goal/service"
	notifydto "daytrack/internal/modules/notify/dto"
	notifyin "daytrack/internal/modules/notify/port/in"
)

type Interactor struct {
	svc    *service.GoalService
	notify notifyin.Usecase
}

func NewInteractor(svc *service.GoalService, notify notifyin.Usecase) goalin.Usecase {
	return &Interactor{svc: svc, notify: notify}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateGoalInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Create(ctx, input.Title)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	i.publish(ctx, notifydto.KindProgress, "New goal added! Keep pushing forward.")
	return toOutput(goal), nil
}

func (i *Interactor) AppendPhase(ctx context.Context, input dto.AppendPhaseInput) (dto.GoalOutput, error) {
	goal, err := i.svc.AppendPhase(ctx, input.GoalID, input.Title)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Advance(ctx context.Context, goalID string) (dto.AdvanceOutput, error) {
	goal, progressed, err := i.svc.Advance(ctx, goalID)
	if err != nil {
		return dto.AdvanceOutput{}, err
	}
	if progressed {
		i.publish(ctx, notifydto.KindProgress, "Phase complete! Next phase unlocked.")
	}
	return dto.AdvanceOutput{Goal: toOutput(goal), HasProgressed: progressed}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.GoalOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toOutput(goal))
	}
	return out, nil
}

func (i *Interactor) CurrentPhases(ctx context.Context) ([]dto.CurrentPhaseOutput, error) {
	views, err := i.svc.CurrentPhases(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CurrentPhaseOutput, 0, len(views))
	for _, v := range views {
		out = append(out, dto.CurrentPhaseOutput{
			GoalID:     v.GoalID,
			GoalTitle:  v.GoalTitle,
			PhaseID:    v.Phase.ID,
			PhaseTitle: v.Phase.Title,
			Position:   v.CurrentIndex,
			PhaseCount: v.PhaseCount,
			Completed:  v.Phase.Completed,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

// publish is best effort. A goal mutation that succeeded must not fail
// because a notifier plugin is broken.
func (i *Interactor) publish(ctx context.Context, kind, message string) {
	if i.notify == nil {
		return
	}
	_, _ = i.notify.Publish(ctx, notifydto.EventInput{Kind: kind, Message: message})
}

func toOutput(goal domain.Goal) dto.GoalOutput {
	phases := make([]dto.PhaseOutput, 0, len(goal.Phases))
	for _, p := range goal.Phases {
		phases = append(phases, dto.PhaseOutput{ID: p.ID, Title: p.Title, Completed: p.Completed})
	}
	return dto.GoalOutput{
		ID:           goal.ID,
		Title:        goal.Title,
		Phases:       phases,
		CurrentIndex: goal.CurrentIndex,
		CreatedAt:    goal.CreatedAt,
	}
}
