package out

import (
	"context"

	"daytrack/internal/modules/note/domain"
)

// NoteStore persists the note collection by whole-value replacement.
type NoteStore interface {
	Load(ctx context.Context) ([]domain.Note, error)
	Save(ctx context.Context, notes []domain.Note) error
}
