package dto

import "time"

type CreateNoteInput struct {
	Content string
}

type UpdateNoteInput struct {
	NoteID  string
	Content string
}

type NoteOutput struct {
	ID        string
	Content   string
	UpdatedAt time.Time
}
