package out

import (
	"context"

	"daytrack/internal/modules/goal/domain"
	goalout "daytrack/internal/modules/goal/port/out"
	"daytrack/internal/platform/docfile"
)

const goalsSection = "goals"

type DocumentGoalStore struct {
	doc *docfile.File
}

func NewDocumentGoalStore(doc *docfile.File) goalout.GoalStore {
	return &DocumentGoalStore{doc: doc}
}

func (s *DocumentGoalStore) Load(_ context.Context) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	if _, err := s.doc.ReadSection(goalsSection, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *DocumentGoalStore) Save(_ context.Context, goals []domain.Goal) error {
	if goals == nil {
		goals = []domain.Goal{}
	}
	return s.doc.WriteSection(goalsSection, goals)
}
