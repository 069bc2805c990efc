package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daytrack/internal/modules/task/domain"
	taskout "daytrack/internal/modules/task/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteTaskProjector struct {
	db *sql.DB
}

func NewSQLiteTaskProjector(dbPath string) (taskout.TaskIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteTaskProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteTaskProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  due_date TEXT NOT NULL,
  completed INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  completed_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("reset tasks: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) UpsertTask(ctx context.Context, task domain.Task) error {
	const stmt = `
INSERT INTO tasks (id, title, description, due_date, completed, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  description=excluded.description,
  due_date=excluded.due_date,
  completed=excluded.completed,
  created_at=excluded.created_at,
  completed_at=excluded.completed_at;
`
	completedAt := any(nil)
	if task.CompletedAt != nil {
		completedAt = task.CompletedAt.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx, stmt,
		task.ID,
		task.Title,
		task.Description,
		task.Due.String(),
		boolToInt(task.Completed),
		task.CreatedAt.Format(time.RFC3339),
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
