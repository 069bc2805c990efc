package service_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	noteout "daytrack/internal/modules/note/adapter/out"
	"daytrack/internal/modules/note/service"
	"daytrack/internal/platform/docfile"
	apperrors "daytrack/internal/platform/errors"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("note-%d", s.n)
}

func newNoteService(t *testing.T, clk *fakeClock) *service.NoteService {
	t.Helper()
	doc := docfile.New(filepath.Join(t.TempDir(), "daytrack.json"))
	return service.NewNoteService(clk, &seqID{}, noteout.NewDocumentNoteStore(doc))
}

func TestCreateTrimsPrependsAndStamps(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
	}}
	svc := newNoteService(t, clk)

	first, err := svc.Create(context.Background(), "  remember the milk  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Content != "remember the milk" {
		t.Fatalf("expected trimmed content, got %q", first.Content)
	}
	if !first.UpdatedAt.Equal(time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", first.UpdatedAt)
	}
	second, err := svc.Create(context.Background(), "call the dentist")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	notes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", notes)
	}

	if _, err := svc.Create(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank content, got %v", err)
	}
}

func TestUpdateRestampsAndFailsOnMissingID(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC),
	}}
	svc := newNoteService(t, clk)
	note, err := svc.Create(context.Background(), "draft")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(context.Background(), note.ID, "final")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "final" {
		t.Fatalf("expected replaced content, got %q", updated.Content)
	}
	if !updated.UpdatedAt.After(note.UpdatedAt) {
		t.Fatalf("expected restamped timestamp, got %v", updated.UpdatedAt)
	}
	if _, err := svc.Update(context.Background(), "ghost", "x"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteIgnoresMissingID(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)}}
	svc := newNoteService(t, clk)
	note, err := svc.Create(context.Background(), "scrap")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), note.ID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}
	notes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty list, got %+v", notes)
	}
}
