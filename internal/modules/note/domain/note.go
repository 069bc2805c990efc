package domain

import (
	"errors"
	"time"
)

// Note is free-form text. The timestamp tracks the last content change.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) Validate() error {
	if n.ID == "" {
		return errors.New("note id is required")
	}
	if n.Content == "" {
		return errors.New("note content is required")
	}
	return nil
}
