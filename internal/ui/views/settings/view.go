package settings

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "daytrack/internal/modules/settings/dto"
	"daytrack/internal/ui/theme"
)

type SettingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Toggle(ctx context.Context, name string) (settingsdto.SettingsOutput, error)
}

type SettingsLoadedMsg struct {
	Settings settingsdto.SettingsOutput
	Err      error
}

// SettingsToggledMsg bubbles to the app model; a dark-mode change swaps the
// active palette, a carry-over change re-plans the task view.
type SettingsToggledMsg struct {
	Name     string
	Settings settingsdto.SettingsOutput
	Err      error
}

type Model struct {
	port     SettingsPort
	settings settingsdto.SettingsOutput
	loading  bool
	width    int
	height   int
}

func New(port SettingsPort) Model {
	return Model{port: port, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Get(context.Background())
		return SettingsLoadedMsg{Settings: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SettingsLoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.settings = msg.Settings
		}

	case SettingsToggledMsg:
		if msg.Err == nil {
			m.settings = msg.Settings
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			return m, m.toggleCmd("dark-mode")
		case "c":
			return m, m.toggleCmd("carry-over")
		case "m":
			return m, m.toggleCmd("motivation")
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading settings…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	sb.WriteString(renderRow("d", "Dark mode", m.settings.DarkMode))
	sb.WriteString(renderRow("c", "Carry over overdue tasks", m.settings.CarryOver))
	sb.WriteString(renderRow("m", "Motivational messages", m.settings.Motivation))
	sb.WriteString("\n" + theme.Muted.Render("press the key to toggle"))

	paneWidth := 48
	if m.width-4 < paneWidth {
		paneWidth = m.width - 4
	}
	pane := theme.Pane.Width(paneWidth).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func renderRow(key, label string, on bool) string {
	state := theme.Muted.Render("off")
	if on {
		state = theme.Done.Render("on ")
	}
	return theme.Hot.Render(key) + "  " + state + "  " + label + "\n"
}

func (m Model) toggleCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Toggle(context.Background(), name)
		return SettingsToggledMsg{Name: name, Settings: out, Err: err}
	}
}
