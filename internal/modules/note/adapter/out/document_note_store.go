package out

import (
	"context"

	"daytrack/internal/modules/note/domain"
	noteout "daytrack/internal/modules/note/port/out"
	"daytrack/internal/platform/docfile"
)

const notesSection = "notes"

type DocumentNoteStore struct {
	doc *docfile.File
}

func NewDocumentNoteStore(doc *docfile.File) noteout.NoteStore {
	return &DocumentNoteStore{doc: doc}
}

func (s *DocumentNoteStore) Load(_ context.Context) ([]domain.Note, error) {
	notes := []domain.Note{}
	if _, err := s.doc.ReadSection(notesSection, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *DocumentNoteStore) Save(_ context.Context, notes []domain.Note) error {
	if notes == nil {
		notes = []domain.Note{}
	}
	return s.doc.WriteSection(notesSection, notes)
}
