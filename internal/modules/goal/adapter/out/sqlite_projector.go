package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daytrack/internal/modules/goal/domain"
	goalout "daytrack/internal/modules/goal/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteGoalProjector keeps one row per goal with its current phase
// denormalized, so the goal overview never needs to unpack phase arrays.
type SQLiteGoalProjector struct {
	db *sql.DB
}

func NewSQLiteGoalProjector(dbPath string) (goalout.GoalIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteGoalProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteGoalProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  phase_count INTEGER NOT NULL,
  completed_phases INTEGER NOT NULL,
  current_index INTEGER NOT NULL,
  current_phase_title TEXT,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goals table: %w", err)
	}
	return nil
}

func (s *SQLiteGoalProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("reset goals: %w", err)
	}
	return nil
}

func (s *SQLiteGoalProjector) UpsertGoal(ctx context.Context, goal domain.Goal) error {
	const stmt = `
INSERT INTO goals (id, title, phase_count, completed_phases, current_index, current_phase_title, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  phase_count=excluded.phase_count,
  completed_phases=excluded.completed_phases,
  current_index=excluded.current_index,
  current_phase_title=excluded.current_phase_title,
  created_at=excluded.created_at;
`
	completed := 0
	for _, p := range goal.Phases {
		if p.Completed {
			completed++
		}
	}
	currentTitle := any(nil)
	if phase, ok := goal.CurrentPhase(); ok {
		currentTitle = phase.Title
	}
	_, err := s.db.ExecContext(ctx, stmt,
		goal.ID,
		goal.Title,
		len(goal.Phases),
		completed,
		goal.CurrentIndex,
		currentTitle,
		goal.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}
