package out

import (
	"context"

	"daytrack/internal/modules/task/domain"
	taskout "daytrack/internal/modules/task/port/out"
	"daytrack/internal/platform/docfile"
)

const tasksSection = "tasks"

type DocumentTaskStore struct {
	doc *docfile.File
}

func NewDocumentTaskStore(doc *docfile.File) taskout.TaskStore {
	return &DocumentTaskStore{doc: doc}
}

func (s *DocumentTaskStore) Load(_ context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if _, err := s.doc.ReadSection(tasksSection, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *DocumentTaskStore) Save(_ context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return s.doc.WriteSection(tasksSection, tasks)
}
