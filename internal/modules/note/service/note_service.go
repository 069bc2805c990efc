package service

import (
	"context"
	"fmt"
	"strings"

	"daytrack/internal/modules/note/domain"
	noteout "daytrack/internal/modules/note/port/out"
	"daytrack/internal/platform/clock"
	apperrors "daytrack/internal/platform/errors"
	"daytrack/internal/platform/id"
)

type NoteService struct {
	clock clock.Clock
	idGen id.Generator
	store noteout.NoteStore
}

func NewNoteService(clock clock.Clock, idGen id.Generator, store noteout.NoteStore) *NoteService {
	return &NoteService{clock: clock, idGen: idGen, store: store}
}

func (s *NoteService) Create(ctx context.Context, content string) (domain.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Note{}, fmt.Errorf("%w: note content is required", apperrors.ErrInvalidInput)
	}
	note := domain.Note{
		ID:        s.idGen.New(),
		Content:   content,
		UpdatedAt: s.clock.Now(),
	}
	notes, err := s.store.Load(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	notes = append([]domain.Note{note}, notes...)
	if err := s.store.Save(ctx, notes); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// Update replaces the content verbatim and restamps the timestamp. Unlike
// delete, updating a missing note is an error.
func (s *NoteService) Update(ctx context.Context, noteID, content string) (domain.Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	idx := indexOf(notes, noteID)
	if idx < 0 {
		return domain.Note{}, fmt.Errorf("%w: note %s", apperrors.ErrNotFound, noteID)
	}
	notes[idx].Content = content
	notes[idx].UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, notes); err != nil {
		return domain.Note{}, err
	}
	return notes[idx], nil
}

// Delete ignores a missing id.
func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(notes, noteID)
	if idx < 0 {
		return nil
	}
	notes = append(notes[:idx], notes[idx+1:]...)
	return s.store.Save(ctx, notes)
}

func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	return s.store.Load(ctx)
}

func indexOf(notes []domain.Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
