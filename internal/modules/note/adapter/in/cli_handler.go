package in

import (
	"context"

	"daytrack/internal/modules/note/dto"
	notein "daytrack/internal/modules/note/port/in"
)

type CLIHandler struct {
	usecase notein.Usecase
}

func NewCLIHandler(usecase notein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, content string) (dto.NoteOutput, error) {
	return h.usecase.Create(ctx, dto.CreateNoteInput{Content: content})
}

func (h CLIHandler) Update(ctx context.Context, noteID, content string) (dto.NoteOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateNoteInput{NoteID: noteID, Content: content})
}

func (h CLIHandler) Delete(ctx context.Context, noteID string) error {
	return h.usecase.Delete(ctx, noteID)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.NoteOutput, error) {
	return h.usecase.List(ctx)
}
