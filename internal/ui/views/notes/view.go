package notes

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notedto "daytrack/internal/modules/note/dto"
	"daytrack/internal/ui/theme"
)

type NotePort interface {
	List(ctx context.Context) ([]notedto.NoteOutput, error)
	Delete(ctx context.Context, noteID string) error
}

type NotesLoadedMsg struct {
	Notes []notedto.NoteOutput
	Err   error
}

type NoteDeletedMsg struct{ Err error }

type noteItem struct{ note notedto.NoteOutput }

func (i noteItem) Title() string {
	first := i.note.Content
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	return first
}

func (i noteItem) Description() string {
	return "updated " + i.note.UpdatedAt.Format("2006-01-02 15:04")
}

func (i noteItem) FilterValue() string { return i.note.Content }

type Model struct {
	port    NotePort
	list    list.Model
	loading bool
	width   int
	height  int
}

func New(port NotePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.port.List(context.Background())
		return NotesLoadedMsg{Notes: notes, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)

	case NotesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Notes (error: " + msg.Err.Error() + ")"
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Notes))
		for _, n := range msg.Notes {
			items = append(items, noteItem{note: n})
		}
		cmds = append(cmds, m.list.SetItems(items))

	case NoteDeletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Refresh())
		}

	case tea.KeyMsg:
		if msg.String() == "d" && !m.Filtering() {
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.deleteCmd(item.note.ID))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading notes…")
	}
	return m.list.View()
}

func (m Model) SelectedNoteID() (string, bool) {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.ID, true
	}
	return "", false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) deleteCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		return NoteDeletedMsg{Err: m.port.Delete(context.Background(), noteID)}
	}
}
