package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	goalout "daytrack/internal/modules/goal/adapter/out"
	"daytrack/internal/modules/goal/domain"
	"daytrack/internal/modules/goal/dto"
	goalin "daytrack/internal/modules/goal/port/in"
	"daytrack/internal/modules/goal/service"
	"daytrack/internal/modules/goal/usecase"
	notifydto "daytrack/internal/modules/notify/dto"
	"daytrack/internal/platform/docfile"
	apperrors "daytrack/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type recordingProjector struct {
	upserts []domain.Goal
	resets  int
}

func (r *recordingProjector) Reset(context.Context) error { r.resets++; return nil }
func (r *recordingProjector) UpsertGoal(_ context.Context, goal domain.Goal) error {
	r.upserts = append(r.upserts, goal)
	return nil
}

type recordingNotifier struct {
	events []notifydto.EventInput
}

func (r *recordingNotifier) Publish(_ context.Context, input notifydto.EventInput) ([]notifydto.DeliveryOutput, error) {
	r.events = append(r.events, input)
	return nil, nil
}

func (r *recordingNotifier) List(context.Context) ([]notifydto.PluginOutput, error) {
	return nil, nil
}

func (r *recordingNotifier) Doctor(context.Context) ([]notifydto.DiagnosisOutput, error) {
	return nil, nil
}

func newGoalInteractor(t *testing.T) (goalin.Usecase, *recordingProjector, *recordingNotifier) {
	t.Helper()
	doc := docfile.New(filepath.Join(t.TempDir(), "daytrack.json"))
	projector := &recordingProjector{}
	notifier := &recordingNotifier{}
	svc := service.NewGoalService(
		&fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		&seqID{},
		goalout.NewDocumentGoalStore(doc),
		projector,
	)
	return usecase.NewInteractor(svc, notifier), projector, notifier
}

func TestCreateGoalPrependsAndAnnouncesProgress(t *testing.T) {
	t.Parallel()
	uc, projector, notifier := newGoalInteractor(t)

	first, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "  Learn Go  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Title != "Learn Go" || first.CurrentIndex != 0 || len(first.Phases) != 0 {
		t.Fatalf("unexpected goal %+v", first)
	}
	second, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "Run a marathon"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	goals, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 2 || goals[0].ID != second.ID || goals[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", goals)
	}
	if len(projector.upserts) != 2 {
		t.Fatalf("expected both goals projected, got %d", len(projector.upserts))
	}
	if len(notifier.events) != 2 || notifier.events[0].Kind != notifydto.KindProgress {
		t.Fatalf("expected a progress event per created goal, got %+v", notifier.events)
	}

	if _, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "   "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank title, got %v", err)
	}
}

func TestAppendPhaseKeepsCursorAndValidates(t *testing.T) {
	t.Parallel()
	uc, _, _ := newGoalInteractor(t)
	goal, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "Learn Go"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := uc.AppendPhase(context.Background(), dto.AppendPhaseInput{GoalID: goal.ID, Title: "Basics"})
	if err != nil {
		t.Fatalf("append first phase: %v", err)
	}
	if updated.CurrentIndex != 0 || len(updated.Phases) != 1 || updated.Phases[0].Completed {
		t.Fatalf("first phase must land under the cursor as pending, got %+v", updated)
	}

	if _, err := uc.AppendPhase(context.Background(), dto.AppendPhaseInput{GoalID: goal.ID, Title: "Concurrency"}); err != nil {
		t.Fatalf("append second phase: %v", err)
	}
	views, err := uc.CurrentPhases(context.Background())
	if err != nil {
		t.Fatalf("current phases: %v", err)
	}
	if len(views) != 1 || views[0].PhaseTitle != "Basics" || views[0].PhaseCount != 2 {
		t.Fatalf("appending must not move the cursor, got %+v", views)
	}

	if _, err := uc.AppendPhase(context.Background(), dto.AppendPhaseInput{GoalID: goal.ID, Title: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank phase title, got %v", err)
	}
	if _, err := uc.AppendPhase(context.Background(), dto.AppendPhaseInput{GoalID: "ghost", Title: "x"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdvanceSignalsProgressOnlyWhenCursorMoves(t *testing.T) {
	t.Parallel()
	uc, _, notifier := newGoalInteractor(t)
	goal, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "Learn Go"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, title := range []string{"A", "B", "C"} {
		if _, err := uc.AppendPhase(context.Background(), dto.AppendPhaseInput{GoalID: goal.ID, Title: title}); err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}
	notifier.events = nil

	out, err := uc.Advance(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !out.HasProgressed || out.Goal.CurrentIndex != 1 || !out.Goal.Phases[0].Completed {
		t.Fatalf("expected A completed with cursor at 1, got %+v", out)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected one progress event, got %+v", notifier.events)
	}

	if out, err = uc.Advance(context.Background(), goal.ID); err != nil || !out.HasProgressed {
		t.Fatalf("second advance: %+v %v", out, err)
	}
	out, err = uc.Advance(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if out.HasProgressed {
		t.Fatalf("completing the last phase must not report progress")
	}
	if out.Goal.CurrentIndex != 2 || !out.Goal.Phases[2].Completed {
		t.Fatalf("expected saturated cursor with C completed, got %+v", out.Goal)
	}
	if len(notifier.events) != 2 {
		t.Fatalf("no event may fire without cursor movement, got %+v", notifier.events)
	}

	out, err = uc.Advance(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("advance on finished goal: %v", err)
	}
	if out.HasProgressed || out.Goal.CurrentIndex != 2 {
		t.Fatalf("finished goal must stay unchanged, got %+v", out)
	}

	if _, err := uc.Advance(context.Background(), "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdvanceOnZeroPhaseGoalIsQuietNoOp(t *testing.T) {
	t.Parallel()
	uc, _, notifier := newGoalInteractor(t)
	goal, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: "Empty"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	notifier.events = nil
	out, err := uc.Advance(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.HasProgressed || len(out.Goal.Phases) != 0 {
		t.Fatalf("zero-phase advance must be a no-op, got %+v", out)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("no-op advance must not notify, got %+v", notifier.events)
	}
	views, err := uc.CurrentPhases(context.Background())
	if err != nil {
		t.Fatalf("current phases: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("zero-phase goal must be excluded from projection, got %+v", views)
	}
}

func TestReindexReplaysEveryGoal(t *testing.T) {
	t.Parallel()
	uc, projector, _ := newGoalInteractor(t)
	for _, title := range []string{"one", "two"} {
		if _, err := uc.Create(context.Background(), dto.CreateGoalInput{Title: title}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	projector.upserts = nil
	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 || len(projector.upserts) != 2 {
		t.Fatalf("expected reset and full replay, got resets=%d upserts=%d", projector.resets, len(projector.upserts))
	}
}
