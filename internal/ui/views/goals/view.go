package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "daytrack/internal/modules/goal/dto"
	"daytrack/internal/ui/theme"
)

type GoalPort interface {
	List(ctx context.Context) ([]goaldto.GoalOutput, error)
	Advance(ctx context.Context, goalID string) (goaldto.AdvanceOutput, error)
}

type GoalsLoadedMsg struct {
	Goals []goaldto.GoalOutput
	Err   error
}

// AdvancedMsg bubbles to the app model so it can surface the phase-complete
// popup when the cursor actually moved.
type AdvancedMsg struct {
	Result goaldto.AdvanceOutput
	Err    error
}

type goalItem struct{ goal goaldto.GoalOutput }

func (i goalItem) Title() string { return i.goal.Title }

func (i goalItem) Description() string {
	if len(i.goal.Phases) == 0 {
		return "no phases yet"
	}
	current := i.goal.Phases[i.goal.CurrentIndex]
	state := fmt.Sprintf("phase %d/%d", i.goal.CurrentIndex+1, len(i.goal.Phases))
	if current.Completed {
		return state + "  " + current.Title + " (complete)"
	}
	return state + "  " + current.Title
}

func (i goalItem) FilterValue() string { return i.goal.Title }

type Model struct {
	port    GoalPort
	list    list.Model
	detail  viewport.Model
	goals   []goaldto.GoalOutput
	loading bool
	width   int
	height  int
}

func New(port GoalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)

	return Model{port: port, list: l, detail: vp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		goals, err := m.port.List(context.Background())
		return GoalsLoadedMsg{Goals: goals, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case GoalsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Goals (error: " + msg.Err.Error() + ")"
			return m, nil
		}
		m.goals = msg.Goals
		items := make([]list.Item, 0, len(msg.Goals))
		for _, g := range msg.Goals {
			items = append(items, goalItem{goal: g})
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.syncDetail()

	case AdvancedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Refresh())
		}

	case tea.KeyMsg:
		if msg.String() == "a" && !m.Filtering() {
			if item, ok := m.list.SelectedItem().(goalItem); ok {
				cmds = append(cmds, m.advanceCmd(item.goal.ID))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		m.syncDetail()
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading goals…")
	}

	listW := m.width / 2
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

func (m Model) SelectedGoalID() (string, bool) {
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		return item.goal.ID, true
	}
	return "", false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width / 2
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m *Model) syncDetail() {
	item, ok := m.list.SelectedItem().(goalItem)
	if !ok {
		m.detail.SetContent(theme.Muted.Render("No goal selected."))
		return
	}
	m.detail.SetContent(renderGoal(item.goal))
}

func renderGoal(g goaldto.GoalOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(g.Title) + "\n\n")
	if len(g.Phases) == 0 {
		sb.WriteString(theme.Muted.Render("No phases yet. Add one with goal:phase."))
		return sb.String()
	}
	for i, p := range g.Phases {
		marker := "[ ]"
		if p.Completed {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, p.Title)
		switch {
		case i == g.CurrentIndex && !p.Completed:
			sb.WriteString(theme.Hot.Render("> "+line) + "\n")
		case p.Completed:
			sb.WriteString(theme.Done.Render("  "+line) + "\n")
		default:
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("a: complete current phase"))
	return sb.String()
}

func (m Model) advanceCmd(goalID string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.port.Advance(context.Background(), goalID)
		return AdvancedMsg{Result: result, Err: err}
	}
}
