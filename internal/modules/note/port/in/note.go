package in

import (
	"context"

	"daytrack/internal/modules/note/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateNoteInput) (dto.NoteOutput, error)
	Update(ctx context.Context, input dto.UpdateNoteInput) (dto.NoteOutput, error)
	Delete(ctx context.Context, noteID string) error
	List(ctx context.Context) ([]dto.NoteOutput, error)
}
