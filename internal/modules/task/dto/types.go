package dto

import "time"

type CreateTaskInput struct {
	Title       string
	Description string
	Date        string
}

type EditTaskInput struct {
	TaskID      string
	Title       string
	Description string
	Date        string
}

type PlanInput struct {
	Date string
}

type TaskOutput struct {
	ID          string
	Title       string
	Description string
	Date        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type DayPlanOutput struct {
	Date         string
	CarryOver    bool
	Active       []TaskOutput
	Upcoming     []TaskOutput
	Completed    []TaskOutput
	OverdueCount int
	AllDone      bool
}

type AgendaOutput struct {
	Date string
	Path string
}
