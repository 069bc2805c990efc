package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	settingsdto "daytrack/internal/modules/settings/dto"
	taskout "daytrack/internal/modules/task/adapter/out"
	"daytrack/internal/modules/task/domain"
	"daytrack/internal/modules/task/dto"
	taskin "daytrack/internal/modules/task/port/in"
	"daytrack/internal/modules/task/service"
	"daytrack/internal/modules/task/usecase"
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
	return fmt.Sprintf("task-%d", s.n)
}

type recordingProjector struct {
	upserts []string
	deletes []string
	resets  int
}

func (r *recordingProjector) Reset(context.Context) error { r.resets++; return nil }
func (r *recordingProjector) UpsertTask(_ context.Context, task domain.Task) error {
	r.upserts = append(r.upserts, task.ID)
	return nil
}
func (r *recordingProjector) DeleteTask(_ context.Context, id string) error {
	r.deletes = append(r.deletes, id)
	return nil
}

type fakeSettings struct {
	prefs settingsdto.SettingsOutput
}

func (f *fakeSettings) Get(context.Context) (settingsdto.SettingsOutput, error) {
	return f.prefs, nil
}

func (f *fakeSettings) Toggle(context.Context, string) (settingsdto.SettingsOutput, error) {
	return f.prefs, nil
}

func newTaskInteractor(t *testing.T, clk *fakeClock, prefs settingsdto.SettingsOutput) (taskin.Usecase, *recordingProjector, string) {
	t.Helper()
	home := t.TempDir()
	doc := docfile.New(filepath.Join(home, "daytrack.json"))
	projector := &recordingProjector{}
	svc := service.NewTaskService(clk, &seqID{}, taskout.NewDocumentTaskStore(doc), projector, taskout.NewMarkdownAgendaWriter(filepath.Join(home, "agenda")))
	return usecase.NewInteractor(svc, &fakeSettings{prefs: prefs}), projector, home
}

func TestCreateDefaultsDateToTodayAndPrepends(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, projector, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})

	first, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "  write report  ", Description: " draft "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Title != "write report" || first.Description != "draft" {
		t.Fatalf("expected trimmed fields, got %+v", first)
	}
	if first.Date != "2026-03-10" {
		t.Fatalf("expected due date defaulted to today, got %s", first.Date)
	}

	second, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "second", Date: "2026-03-12"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if len(projector.upserts) != 2 {
		t.Fatalf("expected both creates projected, got %v", projector.upserts)
	}
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, _, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "   "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "ok", Date: "03/10/2026"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid date format error, got %v", err)
	}
}

func TestEditKeepsTitleWhenBlankAndReplacesDescription(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, _, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	created, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "original", Description: "old notes", Date: "2026-03-11"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	edited, err := uc.Edit(context.Background(), dto.EditTaskInput{TaskID: created.ID, Title: "  ", Description: ""})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Title != "original" {
		t.Fatalf("blank title must keep the existing one, got %q", edited.Title)
	}
	if edited.Description != "" {
		t.Fatalf("description must be replaced even when empty, got %q", edited.Description)
	}
	if edited.Date != "2026-03-11" {
		t.Fatalf("omitted date must keep the existing one, got %s", edited.Date)
	}
	if _, err := uc.Edit(context.Background(), dto.EditTaskInput{TaskID: "ghost", Title: "x"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToggleCompletionStampsAndClearsTimestamp(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC),
	}}
	uc, _, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	created, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "ship it"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	done, err := uc.ToggleCompletion(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("expected completion stamped, got %+v", done)
	}
	if !done.CompletedAt.Equal(time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected completion time %v", done.CompletedAt)
	}
	undone, err := uc.ToggleCompletion(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if undone.Completed || undone.CompletedAt != nil {
		t.Fatalf("expected completion cleared, got %+v", undone)
	}
}

func TestDeleteIsIdempotentAndUpdatesIndex(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, projector, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	created, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "temp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}
	if len(projector.deletes) != 1 || projector.deletes[0] != created.ID {
		t.Fatalf("expected one index delete, got %v", projector.deletes)
	}
	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestPlanRespectsCarryOverPreference(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, _, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: false})
	if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "stale", Date: "2026-03-08"}); err != nil {
		t.Fatalf("create overdue: %v", err)
	}
	today, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "fresh", Date: "2026-03-10"})
	if err != nil {
		t.Fatalf("create today: %v", err)
	}
	plan, err := uc.Plan(context.Background(), dto.PlanInput{})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.Date != "2026-03-10" || plan.CarryOver {
		t.Fatalf("unexpected plan header %+v", plan)
	}
	if len(plan.Active) != 1 || plan.Active[0].ID != today.ID {
		t.Fatalf("carry over disabled must hide overdue tasks, got %+v", plan.Active)
	}
	if plan.OverdueCount != 1 {
		t.Fatalf("overdue count still reflects hidden tasks, got %d", plan.OverdueCount)
	}
	if plan.AllDone {
		t.Fatalf("open task due today must keep AllDone false")
	}

	if _, err := uc.ToggleCompletion(context.Background(), today.ID); err != nil {
		t.Fatalf("complete today: %v", err)
	}
	plan, err = uc.Plan(context.Background(), dto.PlanInput{})
	if err != nil {
		t.Fatalf("replan: %v", err)
	}
	if !plan.AllDone {
		t.Fatalf("all tasks due today complete must set AllDone")
	}
	if _, err := uc.Plan(context.Background(), dto.PlanInput{Date: "not-a-date"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
}

func TestPlanWithNoTasksDueTodayIsNotAllDone(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, _, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "later", Date: "2026-03-20"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	plan, err := uc.Plan(context.Background(), dto.PlanInput{})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.AllDone {
		t.Fatalf("empty today set must never read as all done")
	}
	if len(plan.Upcoming) != 1 {
		t.Fatalf("expected one upcoming task, got %+v", plan.Upcoming)
	}
}

func TestExportAgendaWritesNoteAndPreservesSurroundingText(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, _, home := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: "morning run", Date: "2026-03-10"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	out, err := uc.ExportAgenda(context.Background(), dto.PlanInput{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Path != filepath.Join(home, "agenda", "2026-03-10.md") {
		t.Fatalf("unexpected agenda path %s", out.Path)
	}
	b, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read agenda: %v", err)
	}
	note := string(b)
	if !strings.Contains(note, "date: \"2026-03-10\"") && !strings.Contains(note, "date: 2026-03-10") {
		t.Fatalf("agenda note missing date frontmatter: %s", note)
	}
	if !strings.Contains(note, "- [ ] morning run (2026-03-10)") {
		t.Fatalf("agenda note missing active task: %s", note)
	}

	amended := note + "\npersonal reflection line\n"
	if err := os.WriteFile(out.Path, []byte(amended), 0o644); err != nil {
		t.Fatalf("amend agenda: %v", err)
	}
	if _, err := uc.ExportAgenda(context.Background(), dto.PlanInput{}); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	b, err = os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("re-read agenda: %v", err)
	}
	if !strings.Contains(string(b), "personal reflection line") {
		t.Fatalf("re-export must keep text outside the managed block: %s", b)
	}
}

func TestReindexReplaysEveryTask(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}}
	uc, projector, _ := newTaskInteractor(t, clk, settingsdto.SettingsOutput{CarryOver: true})
	for _, title := range []string{"a", "b", "c"} {
		if _, err := uc.Create(context.Background(), dto.CreateTaskInput{Title: title}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	projector.upserts = nil
	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 {
		t.Fatalf("expected one reset, got %d", projector.resets)
	}
	if len(projector.upserts) != 3 {
		t.Fatalf("expected all tasks replayed, got %v", projector.upserts)
	}
}
