package dto

import "time"

type CreateGoalInput struct {
	Title string
}

type AppendPhaseInput struct {
	GoalID string
	Title  string
}

type PhaseOutput struct {
	ID        string
	Title     string
	Completed bool
}

type GoalOutput struct {
	ID           string
	Title        string
	Phases       []PhaseOutput
	CurrentIndex int
	CreatedAt    time.Time
}

type AdvanceOutput struct {
	Goal          GoalOutput
	HasProgressed bool
}

type CurrentPhaseOutput struct {
	GoalID     string
	GoalTitle  string
	PhaseID    string
	PhaseTitle string
	Position   int
	PhaseCount int
	Completed  bool
}
