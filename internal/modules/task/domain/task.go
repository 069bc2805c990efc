package domain

import (
	"fmt"
	"strings"
	"time"

	"daytrack/internal/platform/dates"
)

const SchemaVersion = 1

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Due         dates.Day  `json:"date"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if t.Due.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.Completed && t.CompletedAt == nil {
		return fmt.Errorf("completed task missing completion timestamp")
	}
	if !t.Completed && t.CompletedAt != nil {
		return fmt.Errorf("pending task carries completion timestamp")
	}
	return nil
}
