package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/findar/internal/carousel"
	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/site"
)

// Model is the Bubble Tea model of the carousel preview
type Model struct {
	doc      *content.Content
	carousel *site.Carousel

	keys keyMap
	help help.Model

	// Status holds the last rejected input, cleared by the next valid one
	Status string

	// UI state
	Width  int
	Height int
}

// New creates a preview over the catalog of doc with the first feature active.
func New(doc *content.Content) (Model, error) {
	ctrl, err := site.NewCarousel(doc)
	if err != nil {
		return Model{}, err
	}
	width, height := GetTerminalSize()
	return Model{
		doc:      doc,
		carousel: ctrl,
		keys:     newKeyMap(),
		help:     help.New(),
		Width:    width,
		Height:   height,
	}, nil
}

// ActiveIndex returns the position of the feature on screen.
func (m Model) ActiveIndex() int {
	return m.carousel.ActiveIndex()
}

// SelectIndex jumps to feature i. Out-of-range indexes are rejected and the
// preview keeps its position.
func (m *Model) SelectIndex(i int) error {
	return m.carousel.SelectIndex(i)
}

// Init initializes the preview
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = ClampWidth(msg.Width)
		m.Height = msg.Height
		m.help.Width = m.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Advance):
			m.apply(carousel.Event{Action: carousel.ActionAdvance})
		case key.Matches(msg, m.keys.Retreat):
			m.apply(carousel.Event{Action: carousel.ActionRetreat})
		case key.Matches(msg, m.keys.Select):
			// Keys are 1-based on screen
			m.apply(carousel.Event{Action: carousel.ActionSelect, Index: int(msg.Runes[0] - '1')})
		}
	}

	return m, nil
}

func (m *Model) apply(ev carousel.Event) {
	if err := m.carousel.Apply(ev); err != nil {
		m.Status = fmt.Sprintf("No feature %d (catalog has %d)", ev.Index+1, m.carousel.Len())
		return
	}
	m.Status = ""
}

// View renders the header, the active feature box, the indicator row and help
func (m Model) View() string {
	width := ClampWidth(m.Width)
	active := m.carousel.Active()

	var b strings.Builder
	b.WriteString(BuildHeaderContent(m.doc.Brand))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(m.doc.Features.Heading))
	b.WriteString("\n\n")

	body := lipgloss.JoinVertical(lipgloss.Left,
		FeatureTitleStyle(active.Theme).Render(active.Title),
		active.Description,
	)
	b.WriteString(FeatureBoxStyle(active.Theme, width).Render(body))
	b.WriteString("\n\n")

	b.WriteString(m.renderIndicators())
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(m.carousel.Cursor().String()))
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.Status))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// renderIndicators draws one dot per feature; the active dot takes the feature colour.
func (m Model) renderIndicators() string {
	from, _ := ThemeColors(m.carousel.Active().Theme)
	on := lipgloss.NewStyle().Foreground(from).Bold(true)
	off := lipgloss.NewStyle().Foreground(DotColor)

	dots := make([]string, 0, m.carousel.Len())
	for _, highlighted := range m.carousel.Indicators() {
		if highlighted {
			dots = append(dots, on.Render(ActiveDot))
		} else {
			dots = append(dots, off.Render(InactiveDot))
		}
	}
	return strings.Join(dots, " ")
}
