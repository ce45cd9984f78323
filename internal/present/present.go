// Package present implements the interactive slide presenter. It owns the
// only mutable state in the program: the current slide index and whether
// speaker notes are visible. Parsing and layout stay in the beamer package.
package present

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pkt.systems/beamer"
	"pkt.systems/beamer/internal/palette"
)

// Model is the bubbletea model for one deck.
type Model struct {
	doc    *beamer.Document
	theme  beamer.Theme
	hl     beamer.Highlighter
	index  int
	notes  bool
	width  int
	height int
}

// New returns a presenter model positioned at the first slide.
func New(doc *beamer.Document, theme beamer.Theme, hl beamer.Highlighter) Model {
	return Model{doc: doc, theme: theme, hl: hl}
}

// Run presents the deck in the alternate screen until the user quits.
func Run(doc *beamer.Document, theme beamer.Theme, hl beamer.Highlighter) error {
	program := tea.NewProgram(New(doc, theme, hl), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "l", "right", " ", "enter":
			if m.index < len(m.doc.Slides)-1 {
				m.index++
			}
		case "k", "h", "left":
			if m.index > 0 {
				m.index--
			}
		case "g":
			m.index = 0
		case "G":
			if n := len(m.doc.Slides); n > 0 {
				m.index = n - 1
			}
		case "n":
			m.notes = !m.notes
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.doc.Slides) == 0 {
		return "no slides"
	}

	pal := m.theme.Palette()
	contentWidth := m.width - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	slide := m.doc.Slides[m.index]
	lines := beamer.RenderLines(slide.Blocks, m.theme, contentWidth, m.hl)

	var b strings.Builder
	rows := 0
	for _, line := range lines {
		if rows >= bodyHeight {
			break
		}
		b.WriteByte(' ')
		b.WriteString(line.Render())
		b.WriteByte('\n')
		rows++
	}

	if m.notes && slide.Notes != "" {
		noteStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Dimmed.Hex())).
			Italic(true)
		for _, note := range strings.Split(slide.Notes, "\n\n") {
			if rows >= bodyHeight {
				break
			}
			b.WriteByte(' ')
			b.WriteString(noteStyle.Render("» " + note))
			b.WriteByte('\n')
			rows++
		}
	}

	for rows < bodyHeight {
		b.WriteByte('\n')
		rows++
	}

	b.WriteString(m.statusBar(pal))
	return b.String()
}

func (m Model) statusBar(pal palette.Palette) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dimmed.Hex())).
		Width(m.width)

	left := m.doc.Meta.Author
	if m.doc.Meta.Date != "" {
		if left != "" {
			left += "  "
		}
		left += m.doc.Meta.Date
	}
	right := ""
	if m.doc.Meta.Paging != "" {
		right = fmt.Sprintf(m.doc.Meta.Paging, m.index+1, len(m.doc.Slides))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return style.Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}
