package app

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "daytrack/internal/modules/goal/dto"
	notedto "daytrack/internal/modules/note/dto"
	notifydto "daytrack/internal/modules/notify/dto"
	settingsdto "daytrack/internal/modules/settings/dto"
	taskdto "daytrack/internal/modules/task/dto"
	"daytrack/internal/ui/components"
	"daytrack/internal/ui/theme"
	goalsview "daytrack/internal/ui/views/goals"
	notesview "daytrack/internal/ui/views/notes"
	settingsview "daytrack/internal/ui/views/settings"
	tasksview "daytrack/internal/ui/views/tasks"
)

// Ports are the module surfaces the TUI drives. The CLI handlers satisfy
// them, so bootstrap wires the same objects into both front ends.
type TaskPort interface {
	Create(ctx context.Context, title, description, date string) (taskdto.TaskOutput, error)
	Edit(ctx context.Context, taskID, title, description, date string) (taskdto.TaskOutput, error)
	ToggleCompletion(ctx context.Context, taskID string) (taskdto.TaskOutput, error)
	Delete(ctx context.Context, taskID string) error
	List(ctx context.Context) ([]taskdto.TaskOutput, error)
	Plan(ctx context.Context, date string) (taskdto.DayPlanOutput, error)
	ExportAgenda(ctx context.Context, date string) (taskdto.AgendaOutput, error)
}

type GoalPort interface {
	Create(ctx context.Context, title string) (goaldto.GoalOutput, error)
	AppendPhase(ctx context.Context, goalID, title string) (goaldto.GoalOutput, error)
	Advance(ctx context.Context, goalID string) (goaldto.AdvanceOutput, error)
	List(ctx context.Context) ([]goaldto.GoalOutput, error)
}

type NotePort interface {
	Create(ctx context.Context, content string) (notedto.NoteOutput, error)
	Delete(ctx context.Context, noteID string) error
	List(ctx context.Context) ([]notedto.NoteOutput, error)
}

type SettingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Toggle(ctx context.Context, name string) (settingsdto.SettingsOutput, error)
}

type NotifyPort interface {
	Publish(ctx context.Context, kind, message string) ([]notifydto.DeliveryOutput, error)
}

type tab int

const (
	tabTasks tab = iota
	tabGoals
	tabNotes
	tabSettings
)

var tabNames = []string{"Tasks", "Goals", "Notes", "Settings"}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.Palette, k.Help, k.Quit},
	}
}

type statusMsg struct{ text string }

type popupMsg struct{ text string }

type dayTickMsg time.Time

type publishedMsg struct{}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Model struct {
	homePath string
	taskPort TaskPort
	goalPort GoalPort
	notePort NotePort
	setPort  SettingsPort
	notify   NotifyPort

	active   tab
	tasks    tasksview.Model
	goals    goalsview.Model
	notes    notesview.Model
	settings settingsview.Model
	palette  components.Palette
	keys     keyMap
	help     help.Model

	motivation bool
	allDone    bool
	status     string
	popup      string
	width      int
	height     int
}

func NewModel(homePath string, task TaskPort, goal GoalPort, note NotePort, set SettingsPort, notify NotifyPort) Model {
	return Model{
		homePath: homePath,
		taskPort: task,
		goalPort: goal,
		notePort: note,
		setPort:  set,
		notify:   notify,
		tasks:    tasksview.New(task),
		goals:    goalsview.New(goal),
		notes:    notesview.New(note),
		settings: settingsview.New(set),
		palette:  components.NewPalette(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		status:   "home: " + homePath,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tasks.Init(),
		m.goals.Init(),
		m.notes.Init(),
		m.settings.Init(),
		dayTick(),
	)
}

// dayTick wakes the model once a minute so the plan rolls over at midnight
// without any task mutation.
func dayTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return dayTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(msg.Width / 2)
		m.help.Width = msg.Width
		return m.propagateSize(msg)

	case components.PaletteSubmitMsg:
		if msg.Input != "" {
			cmds = append(cmds, m.executePalette(msg.Input))
		}
		return m, tea.Batch(cmds...)

	case components.PaletteCancelMsg:
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case popupMsg:
		m.popup = msg.text
		return m, nil

	case publishedMsg:
		return m, nil

	case dayTickMsg:
		cmds = append(cmds, m.tasks.Refresh(), dayTick())

	case tasksview.PlanLoadedMsg:
		prev := m.allDone
		if msg.Err == nil {
			m.allDone = msg.Plan.AllDone
		}
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil && msg.Plan.AllDone && !prev && m.motivation {
			m.popup = "All of today's tasks are done. Great work!"
			cmds = append(cmds, m.publishCmd(notifydto.KindMotivation, m.popup))
		}
		return m, tea.Batch(cmds...)

	case goalsview.AdvancedMsg:
		if msg.Err == nil && msg.Result.HasProgressed {
			m.popup = "Phase complete! Next phase unlocked."
		}
		var cmd tea.Cmd
		m.goals, cmd = m.goals.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case settingsview.SettingsLoadedMsg:
		if msg.Err == nil {
			m.motivation = msg.Settings.Motivation
			theme.Apply(msg.Settings.DarkMode)
		}

	case settingsview.SettingsToggledMsg:
		if msg.Err == nil {
			m.motivation = msg.Settings.Motivation
			switch msg.Name {
			case "dark-mode":
				theme.Apply(msg.Settings.DarkMode)
			case "carry-over":
				cmds = append(cmds, m.tasks.Refresh())
			}
		}

	case tea.KeyMsg:
		// A visible popup swallows the next keypress.
		if m.popup != "" {
			m.popup = ""
			return m, nil
		}
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
		if !m.filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.NextTab):
				m.active = (m.active + 1) % tab(len(tabNames))
				return m, nil
			case key.Matches(msg, m.keys.PrevTab):
				m.active = (m.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
				return m, nil
			case key.Matches(msg, m.keys.Palette):
				return m, m.palette.Open()
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	cmds = append(cmds, m.updateActive(msg))
	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch routeTab(msg, m.active) {
	case tabTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case tabGoals:
		m.goals, cmd = m.goals.Update(msg)
	case tabNotes:
		m.notes, cmd = m.notes.Update(msg)
	case tabSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return cmd
}

// routeTab sends key input to the active tab only, while async results always
// reach the view that asked for them.
func routeTab(msg tea.Msg, active tab) tab {
	switch msg.(type) {
	case tasksview.PlanLoadedMsg, tasksview.ToggledMsg:
		return tabTasks
	case goalsview.GoalsLoadedMsg, goalsview.AdvancedMsg:
		return tabGoals
	case notesview.NotesLoadedMsg, notesview.NoteDeletedMsg:
		return tabNotes
	case settingsview.SettingsLoadedMsg, settingsview.SettingsToggledMsg:
		return tabSettings
	}
	return active
}

func (m Model) propagateSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(inner)
	cmds = append(cmds, cmd)
	m.goals, cmd = m.goals.Update(inner)
	cmds = append(cmds, cmd)
	m.notes, cmd = m.notes.Update(inner)
	cmds = append(cmds, cmd)
	m.settings, cmd = m.settings.Update(inner)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) filtering() bool {
	switch m.active {
	case tabTasks:
		return m.tasks.Filtering()
	case tabGoals:
		return m.goals.Filtering()
	case tabNotes:
		return m.notes.Filtering()
	}
	return false
}

func (m Model) View() string {
	var body string
	switch m.active {
	case tabTasks:
		body = m.tasks.View()
	case tabGoals:
		body = m.goals.View()
	case tabNotes:
		body = m.notes.View()
	case tabSettings:
		body = m.settings.View()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, m.tabBar(), body, m.statusBar())

	if m.palette.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.palette.View(),
			lipgloss.WithWhitespaceBackground(theme.Base))
	}
	if m.popup != "" {
		card := theme.PaneActive.Render(theme.Hot.Render(m.popup) + "\n\n" + theme.Muted.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card,
			lipgloss.WithWhitespaceBackground(theme.Base))
	}
	return screen
}

func (m Model) tabBar() string {
	active := lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Lavender).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(theme.Subtext0).
		Background(theme.Surface0).
		Padding(0, 2)

	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts = append(parts, active.Render(name))
		} else {
			parts = append(parts, inactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) statusBar() string {
	bar := lipgloss.NewStyle().
		Background(theme.Surface0).
		Foreground(theme.Subtext0).
		Width(m.width).
		Padding(0, 1)
	left := m.status
	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return bar.Render(left)
	}
	return bar.Render(left + strings.Repeat(" ", gap) + right)
}

// executePalette runs one palette command. Keep the dispatch in sync with the
// hints in components/palette.go.
func (m Model) executePalette(input string) tea.Cmd {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "task:add":
		title, date := rest, ""
		if fields := strings.Fields(rest); len(fields) > 1 && dateRe.MatchString(fields[len(fields)-1]) {
			date = fields[len(fields)-1]
			title = strings.TrimSpace(strings.Join(fields[:len(fields)-1], " "))
		}
		return m.mutateTasks(func(ctx context.Context) (string, error) {
			task, err := m.taskPort.Create(ctx, title, "", date)
			if err != nil {
				return "", err
			}
			return "added task " + task.Title, nil
		})

	case "task:date":
		taskID, ok := m.tasks.SelectedTaskID()
		if !ok {
			return status("no task selected")
		}
		if !dateRe.MatchString(rest) {
			return status("task:date needs YYYY-MM-DD")
		}
		return m.mutateTasks(func(ctx context.Context) (string, error) {
			current, err := findTask(ctx, m.taskPort, taskID)
			if err != nil {
				return "", err
			}
			if _, err := m.taskPort.Edit(ctx, taskID, "", current.Description, rest); err != nil {
				return "", err
			}
			return "moved task to " + rest, nil
		})

	case "task:done":
		taskID, ok := m.tasks.SelectedTaskID()
		if !ok {
			return status("no task selected")
		}
		return m.mutateTasks(func(ctx context.Context) (string, error) {
			task, err := m.taskPort.ToggleCompletion(ctx, taskID)
			if err != nil {
				return "", err
			}
			if task.Completed {
				return "completed " + task.Title, nil
			}
			return "reopened " + task.Title, nil
		})

	case "task:rm":
		taskID, ok := m.tasks.SelectedTaskID()
		if !ok {
			return status("no task selected")
		}
		return m.mutateTasks(func(ctx context.Context) (string, error) {
			if err := m.taskPort.Delete(ctx, taskID); err != nil {
				return "", err
			}
			return "task removed", nil
		})

	case "goal:add":
		return m.mutateGoals(func(ctx context.Context) (string, error) {
			goal, err := m.goalPort.Create(ctx, rest)
			if err != nil {
				return "", err
			}
			return "added goal " + goal.Title, nil
		})

	case "goal:phase":
		goalID, ok := m.goals.SelectedGoalID()
		if !ok {
			return status("no goal selected")
		}
		return m.mutateGoals(func(ctx context.Context) (string, error) {
			if _, err := m.goalPort.AppendPhase(ctx, goalID, rest); err != nil {
				return "", err
			}
			return "phase added", nil
		})

	case "goal:advance":
		goalID, ok := m.goals.SelectedGoalID()
		if !ok {
			return status("no goal selected")
		}
		return func() tea.Msg {
			result, err := m.goalPort.Advance(context.Background(), goalID)
			return goalsview.AdvancedMsg{Result: result, Err: err}
		}

	case "note:add":
		return m.mutateNotes(func(ctx context.Context) (string, error) {
			if _, err := m.notePort.Create(ctx, rest); err != nil {
				return "", err
			}
			return "note added", nil
		})

	case "note:rm":
		noteID, ok := m.notes.SelectedNoteID()
		if !ok {
			return status("no note selected")
		}
		return m.mutateNotes(func(ctx context.Context) (string, error) {
			if err := m.notePort.Delete(ctx, noteID); err != nil {
				return "", err
			}
			return "note removed", nil
		})

	case "settings:toggle":
		return func() tea.Msg {
			out, err := m.setPort.Toggle(context.Background(), rest)
			return settingsview.SettingsToggledMsg{Name: rest, Settings: out, Err: err}
		}

	case "agenda:export":
		return func() tea.Msg {
			out, err := m.taskPort.ExportAgenda(context.Background(), rest)
			if err != nil {
				return statusMsg{text: err.Error()}
			}
			return statusMsg{text: "agenda written to " + out.Path}
		}
	}

	return status("unknown command " + cmd)
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func (m Model) mutateTasks(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return tea.Sequence(runStatus(fn), m.tasks.Refresh())
}

func (m Model) mutateGoals(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return tea.Sequence(runStatus(fn), m.goals.Refresh())
}

func (m Model) mutateNotes(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return tea.Sequence(runStatus(fn), m.notes.Refresh())
}

func runStatus(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := fn(context.Background())
		if err != nil {
			return statusMsg{text: err.Error()}
		}
		return statusMsg{text: text}
	}
}

func (m Model) publishCmd(kind, message string) tea.Cmd {
	if m.notify == nil {
		return nil
	}
	return func() tea.Msg {
		// Best effort. Plugin failures never disturb the UI.
		_, _ = m.notify.Publish(context.Background(), kind, message)
		return publishedMsg{}
	}
}

func findTask(ctx context.Context, port TaskPort, taskID string) (taskdto.TaskOutput, error) {
	tasks, err := port.List(ctx)
	if err != nil {
		return taskdto.TaskOutput{}, err
	}
	for _, t := range tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return taskdto.TaskOutput{}, nil
}
