package domain

import (
	"errors"
	"time"
)

// Phase is one step of a goal. Completion is one way; nothing in this
// package ever clears the flag.
type Phase struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is an ordered phase sequence with a single advancing cursor. The
// cursor is clamped to [0, len(phases)-1] and never decreases.
type Goal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Phases       []Phase   `json:"phases"`
	CurrentIndex int       `json:"currentIndex"`
	CreatedAt    time.Time `json:"created_at"`
}

func (g Goal) Validate() error {
	if g.ID == "" {
		return errors.New("goal id is required")
	}
	if g.Title == "" {
		return errors.New("goal title is required")
	}
	if g.CurrentIndex < 0 {
		return errors.New("current index must not be negative")
	}
	if len(g.Phases) > 0 && g.CurrentIndex > len(g.Phases)-1 {
		return errors.New("current index past last phase")
	}
	return nil
}

// CurrentPhase returns the phase under the cursor, or false for a goal
// with no phases or a cursor pointing outside the sequence.
func (g Goal) CurrentPhase() (Phase, bool) {
	if g.CurrentIndex < 0 || g.CurrentIndex >= len(g.Phases) {
		return Phase{}, false
	}
	return g.Phases[g.CurrentIndex], true
}

// Advance marks the phase under the cursor completed and moves the cursor
// one step when a next phase exists. The returned flag reports whether the
// cursor moved; completing the final phase does not count as progress, and
// a goal with no current phase is returned unchanged.
func (g Goal) Advance() (Goal, bool) {
	if _, ok := g.CurrentPhase(); !ok {
		return g, false
	}
	phases := make([]Phase, len(g.Phases))
	copy(phases, g.Phases)
	phases[g.CurrentIndex].Completed = true
	g.Phases = phases
	if g.CurrentIndex+1 < len(phases) {
		g.CurrentIndex++
		return g, true
	}
	return g, false
}

// CurrentPhaseView pairs a goal with the phase its cursor points at.
type CurrentPhaseView struct {
	GoalID       string
	GoalTitle    string
	CurrentIndex int
	PhaseCount   int
	Phase        Phase
}

// ProjectCurrentPhases emits one entry per goal that has a phase under its
// cursor, preserving input order. Zero-phase goals are skipped.
func ProjectCurrentPhases(goals []Goal) []CurrentPhaseView {
	views := make([]CurrentPhaseView, 0, len(goals))
	for _, g := range goals {
		phase, ok := g.CurrentPhase()
		if !ok {
			continue
		}
		views = append(views, CurrentPhaseView{
			GoalID:       g.ID,
			GoalTitle:    g.Title,
			CurrentIndex: g.CurrentIndex,
			PhaseCount:   len(g.Phases),
			Phase:        phase,
		})
	}
	return views
}
