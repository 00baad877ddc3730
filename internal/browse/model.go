// Package browse is a full-screen view of the contact list with cursor
// movement and delete-with-confirmation.
package browse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/contacts/internal/render"
	"github.com/mesh-intelligence/contacts/internal/store"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Model is the bubbletea model for the browse view.
type Model struct {
	store      *store.Store
	styler     render.Styler
	keys       listKeys
	confirm    confirmKeys
	help       help.Model
	cursor     int
	confirming bool
	status     string
	width      int
	height     int
}

// New returns a browse model over st.
func New(st *store.Store, styler render.Styler) Model {
	if styler == nil {
		styler = render.Plain{}
	}
	return Model{
		store:   st,
		styler:  styler,
		keys:    ListKeyMap(),
		confirm: ConfirmKeyMap(),
		help:    help.New(),
	}
}

// Run starts the program on in and out and blocks until the user quits.
func Run(st *store.Store, styler render.Styler, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(st, styler), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// Cursor returns the 0-based selected row.
func (m Model) Cursor() int { return m.cursor }

// Confirming reports whether a delete awaits confirmation.
func (m Model) Confirming() bool { return m.confirming }

// Status returns the last status message.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if m.store.Len() == 0 {
			m.status = "No contacts to delete."
			return m, nil
		}
		m.confirming = true
		m.status = ""
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirm.Yes):
		m.confirming = false
		err := m.store.Delete(m.cursor + 1)
		switch {
		case err == nil:
			m.status = "Contact deleted successfully!"
		case errors.Is(err, types.ErrSave):
			m.status = "Contact deleted, but saving failed: " + err.Error()
		default:
			m.status = err.Error()
		}
		if n := m.store.Len(); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		} else if n == 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.confirm.No):
		m.confirming = false
		m.status = "Delete cancelled."
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	contacts := m.store.List()

	sb.WriteString(m.styler.Style(render.KindHeading, render.ListTitle))
	fmt.Fprintf(&sb, " %d/%d\n\n", len(contacts), m.store.Cap())

	if len(contacts) == 0 {
		sb.WriteString(render.NoContacts)
		sb.WriteByte('\n')
	}
	for i, c := range contacts {
		line := render.ContactLine(m.styler, i+1, c)
		if i == m.cursor {
			sb.WriteString(m.styler.Style(render.KindSelected, "> "))
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	if m.confirming && m.cursor < len(contacts) {
		fmt.Fprintf(&sb, "Delete contact %d (%s)? ", m.cursor+1, contacts[m.cursor].Label)
		sb.WriteByte('\n')
		sb.WriteString(m.help.View(m.confirm))
	} else {
		if m.status != "" {
			sb.WriteString(m.status)
			sb.WriteByte('\n')
		}
		sb.WriteString(m.help.View(m.keys))
	}
	sb.WriteByte('\n')
	return sb.String()
}
