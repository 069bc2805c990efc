package domain_test

import (
	"testing"
	"time"

	"daytrack/internal/modules/goal/domain"
)

func threePhaseGoal() domain.Goal {
	return domain.Goal{
		ID:    "g1",
		Title: "Learn Go",
		Phases: []domain.Phase{
			{ID: "p1", Title: "A"},
			{ID: "p2", Title: "B"},
			{ID: "p3", Title: "C"},
		},
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestAdvanceWalksPhasesAndSaturatesAtLastIndex(t *testing.T) {
	t.Parallel()
	g := threePhaseGoal()

	g, progressed := g.Advance()
	if !progressed {
		t.Fatalf("first advance must report progress")
	}
	if !g.Phases[0].Completed || g.CurrentIndex != 1 {
		t.Fatalf("expected A completed and cursor at 1, got %+v", g)
	}

	g, progressed = g.Advance()
	if !progressed || g.CurrentIndex != 2 {
		t.Fatalf("expected cursor at 2 with progress, got index %d progressed %v", g.CurrentIndex, progressed)
	}

	g, progressed = g.Advance()
	if progressed {
		t.Fatalf("completing the final phase must not report progress")
	}
	if !g.Phases[2].Completed || g.CurrentIndex != 2 {
		t.Fatalf("expected C completed and cursor saturated at 2, got %+v", g)
	}

	again, progressed := g.Advance()
	if progressed {
		t.Fatalf("advance on a fully completed goal must not report progress")
	}
	if again.CurrentIndex != g.CurrentIndex || !again.Phases[2].Completed {
		t.Fatalf("advance on a fully completed goal must leave state unchanged, got %+v", again)
	}
}

func TestAdvanceOnZeroPhaseGoalIsNoOp(t *testing.T) {
	t.Parallel()
	g := domain.Goal{ID: "g1", Title: "Empty"}
	out, progressed := g.Advance()
	if progressed {
		t.Fatalf("zero-phase goal must not report progress")
	}
	if len(out.Phases) != 0 || out.CurrentIndex != 0 {
		t.Fatalf("zero-phase goal must be unchanged, got %+v", out)
	}
}

func TestAdvanceDoesNotMutateInputPhases(t *testing.T) {
	t.Parallel()
	g := threePhaseGoal()
	if _, progressed := g.Advance(); !progressed {
		t.Fatalf("expected progress")
	}
	if g.Phases[0].Completed {
		t.Fatalf("advance must not mutate the receiver's phase slice")
	}
}

func TestProjectCurrentPhasesSkipsEmptyGoalsAndKeepsOrder(t *testing.T) {
	t.Parallel()
	full := threePhaseGoal()
	empty := domain.Goal{ID: "g2", Title: "Empty"}
	single := domain.Goal{ID: "g3", Title: "Single", Phases: []domain.Phase{{ID: "p9", Title: "Only"}}}

	views := domain.ProjectCurrentPhases([]domain.Goal{full, empty, single})
	if len(views) != 2 {
		t.Fatalf("expected two projected goals, got %+v", views)
	}
	if views[0].GoalID != "g1" || views[0].Phase.Title != "A" {
		t.Fatalf("expected first goal's phase A, got %+v", views[0])
	}
	if views[1].GoalID != "g3" || views[1].Phase.Title != "Only" {
		t.Fatalf("expected single-phase goal projected at index 0, got %+v", views[1])
	}
}

func TestFirstAppendedPhaseBecomesCurrentWithoutAdvance(t *testing.T) {
	t.Parallel()
	g := domain.Goal{ID: "g1", Title: "Fresh"}
	g.Phases = append(g.Phases, domain.Phase{ID: "p1", Title: "Start"})
	phase, ok := g.CurrentPhase()
	if !ok || phase.ID != "p1" {
		t.Fatalf("index 0 must pick up the first appended phase, got %+v ok=%v", phase, ok)
	}
}

func TestValidateRejectsCursorPastLastPhase(t *testing.T) {
	t.Parallel()
	g := threePhaseGoal()
	g.CurrentIndex = 3
	if err := g.Validate(); err == nil {
		t.Fatalf("cursor past last phase must fail validation")
	}
	g.CurrentIndex = -1
	if err := g.Validate(); err == nil {
		t.Fatalf("negative cursor must fail validation")
	}
}
