package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskdto "daytrack/internal/modules/task/dto"
	"daytrack/internal/ui/theme"
)

type TaskPort interface {
	Plan(ctx context.Context, date string) (taskdto.DayPlanOutput, error)
	ToggleCompletion(ctx context.Context, taskID string) (taskdto.TaskOutput, error)
}

type PlanLoadedMsg struct {
	Plan taskdto.DayPlanOutput
	Err  error
}

// ToggledMsg bubbles to the app model, which decides whether the change
// completed the whole day and a celebration is due.
type ToggledMsg struct {
	Task taskdto.TaskOutput
	Err  error
}

type section int

const (
	sectionActive section = iota
	sectionUpcoming
	sectionCompleted
)

type taskItem struct {
	task    taskdto.TaskOutput
	section section
}

func (i taskItem) Title() string {
	marker := "[ ]"
	if i.task.Completed {
		marker = "[x]"
	}
	return marker + " " + i.task.Title
}

func (i taskItem) Description() string {
	switch i.section {
	case sectionUpcoming:
		return "upcoming  " + i.task.Date
	case sectionCompleted:
		return "done  " + i.task.Date
	default:
		return "due  " + i.task.Date
	}
}

func (i taskItem) FilterValue() string { return i.task.Title }

type Model struct {
	port    TaskPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	plan    taskdto.DayPlanOutput
	loading bool
	width   int
	height  int
}

func New(port TaskPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Today"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh re-classifies the task set against the current date.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Plan(context.Background(), "")
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlanLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Today (error: " + msg.Err.Error() + ")"
			return m, nil
		}
		m.plan = msg.Plan
		m.list.Title = "Today · " + msg.Plan.Date
		items := make([]list.Item, 0, len(msg.Plan.Active)+len(msg.Plan.Upcoming)+len(msg.Plan.Completed))
		for _, t := range msg.Plan.Active {
			items = append(items, taskItem{task: t, section: sectionActive})
		}
		for _, t := range msg.Plan.Upcoming {
			items = append(items, taskItem{task: t, section: sectionUpcoming})
		}
		for _, t := range msg.Plan.Completed {
			items = append(items, taskItem{task: t, section: sectionCompleted})
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderSummary())

	case ToggledMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Refresh())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == " " && !m.Filtering() {
			if item, ok := m.list.SelectedItem().(taskItem); ok {
				cmds = append(cmds, m.toggleCmd(item.task.ID))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading tasks…")
	}

	listW := m.width * 6 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedTaskID returns the current selection's task ID, if any.
func (m Model) SelectedTaskID() (string, bool) {
	if item, ok := m.list.SelectedItem().(taskItem); ok {
		return item.task.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 6 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderSummary() string {
	p := m.plan
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Day Plan") + "\n\n")
	sb.WriteString(theme.Muted.Render("date:      ") + p.Date + "\n")
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("active:    "), len(p.Active)))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("upcoming:  "), len(p.Upcoming)))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("completed: "), len(p.Completed)))
	if p.OverdueCount > 0 && !p.CarryOver {
		sb.WriteString(fmt.Sprintf("%s%d (hidden, carry over off)\n", theme.Muted.Render("overdue:   "), p.OverdueCount))
	} else if p.OverdueCount > 0 {
		sb.WriteString(fmt.Sprintf("%s%d carried into today\n", theme.Muted.Render("overdue:   "), p.OverdueCount))
	}
	if p.AllDone {
		sb.WriteString("\n" + theme.Done.Render("all of today's tasks are complete"))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("space: toggle done  /: filter  :: palette"))
	return sb.String()
}

func (m Model) toggleCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.port.ToggleCompletion(context.Background(), taskID)
		return ToggledMsg{Task: task, Err: err}
	}
}
