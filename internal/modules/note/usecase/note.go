package usecase

import (
	"context"

	"daytrack/internal/modules/note/domain"
	"daytrack/internal/modules/note/dto"
	notein "daytrack/internal/modules/note/port/in"
	"daytrack/internal/modules/note/service"
)

type Interactor struct {
	svc *service.NoteService
}

func NewInteractor(svc *service.NoteService) notein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateNoteInput) (dto.NoteOutput, error) {
	note, err := i.svc.Create(ctx, input.Content)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toOutput(note), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateNoteInput) (dto.NoteOutput, error) {
	note, err := i.svc.Update(ctx, input.NoteID, input.Content)
	if err != nil {
		return dto.NoteOutput{}, err
	}
	return toOutput(note), nil
}

func (i *Interactor) Delete(ctx context.Context, noteID string) error {
	return i.svc.Delete(ctx, noteID)
}

func (i *Interactor) List(ctx context.Context) ([]dto.NoteOutput, error) {
	notes, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, toOutput(note))
	}
	return out, nil
}

func toOutput(note domain.Note) dto.NoteOutput {
	return dto.NoteOutput{ID: note.ID, Content: note.Content, UpdatedAt: note.UpdatedAt}
}
