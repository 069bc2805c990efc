package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daytrack/internal/modules/task/domain"
	taskout "daytrack/internal/modules/task/port/out"
	"daytrack/internal/platform/dates"
	"daytrack/internal/platform/markdown"
)

const (
	managedAgendaStart = "<!-- daytrack:agenda:start -->"
	managedAgendaEnd   = "<!-- daytrack:agenda:end -->"
)

// MarkdownAgendaWriter renders one agenda note per day. The task lists live
// in a managed block so anything the user writes around it survives
// re-export.
type MarkdownAgendaWriter struct {
	agendaPath string
}

func NewMarkdownAgendaWriter(agendaPath string) taskout.AgendaWriter {
	return &MarkdownAgendaWriter{agendaPath: agendaPath}
}

func (w *MarkdownAgendaWriter) WriteAgenda(_ context.Context, day dates.Day, buckets domain.Buckets, carryOver bool) (string, error) {
	notePath := filepath.Join(w.agendaPath, day.String()+".md")
	if err := os.MkdirAll(w.agendaPath, 0o755); err != nil {
		return "", fmt.Errorf("create agenda directory: %w", err)
	}

	body := ""
	if existing, err := os.ReadFile(notePath); err == nil {
		_, existingBody, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr == nil {
			body = existingBody
		}
	}
	body = markdown.ReplaceManagedBlock(body, managedAgendaStart, managedAgendaEnd, renderAgenda(buckets, carryOver))

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"date":           day.String(),
		"carry_over":     carryOver,
		"active":         len(buckets.ActiveView(carryOver)),
		"overdue":        len(buckets.OverdueUnfinished),
		"upcoming":       len(buckets.Upcoming),
		"completed":      len(buckets.Completed),
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write agenda note: %w", err)
	}
	return notePath, nil
}

func renderAgenda(buckets domain.Buckets, carryOver bool) string {
	var sb strings.Builder
	sb.WriteString("## Today\n")
	active := buckets.ActiveView(carryOver)
	if len(active) == 0 {
		sb.WriteString("- nothing scheduled\n")
	}
	for _, t := range active {
		sb.WriteString(fmt.Sprintf("- [ ] %s (%s)\n", t.Title, t.Due))
	}
	if !carryOver && len(buckets.OverdueUnfinished) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d unfinished from previous days (carry over disabled)\n", len(buckets.OverdueUnfinished)))
	}
	if len(buckets.Upcoming) > 0 {
		sb.WriteString("\n## Upcoming\n")
		for _, t := range buckets.Upcoming {
			sb.WriteString(fmt.Sprintf("- [ ] %s (%s)\n", t.Title, t.Due))
		}
	}
	if len(buckets.Completed) > 0 {
		sb.WriteString("\n## Completed\n")
		for _, t := range buckets.Completed {
			sb.WriteString(fmt.Sprintf("- [x] %s (%s)\n", t.Title, t.Due))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
