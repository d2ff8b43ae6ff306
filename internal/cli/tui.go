package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

var (
	stepCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stepVisitedStyle = lipgloss.NewStyle().Foreground(colorWhite)
	stepPendingStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// walkModel is the bubbletea model for stepping through a traversal
// one vertex at a time. The traversal order is computed up front; the
// model only moves a cursor through it.
type walkModel struct {
	graph   *graph.Graph
	order   string
	start   int
	visited []int

	// cursor is how many vertices of the order are revealed.
	cursor int
}

// newWalkModel creates a step-through model over a precomputed
// traversal order.
func newWalkModel(g *graph.Graph, order string, start int, visited []int) walkModel {
	return walkModel{
		graph:   g,
		order:   order,
		start:   start,
		visited: visited,
	}
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", "enter", " ":
			if m.cursor < len(m.visited) {
				m.cursor++
			}
		case "left", "h", "p", "backspace":
			if m.cursor > 0 {
				m.cursor--
			}
		case "a", "end":
			m.cursor = len(m.visited)
		case "home", "0":
			m.cursor = 0
		}
	}
	return m, nil
}

func (m walkModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s from vertex %d", strings.ToUpper(m.order), m.start)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("→/space advance  ← back  a all  q quit"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	for i, v := range m.visited {
		if i > 0 {
			b.WriteString(StyleDim.Render(" → "))
		}
		label := fmt.Sprintf("%d", v)
		switch {
		case i == m.cursor-1:
			b.WriteString(stepCurrentStyle.Render(label))
		case i < m.cursor:
			b.WriteString(stepVisitedStyle.Render(label))
		default:
			b.WriteString(stepPendingStyle.Render("·"))
		}
	}
	b.WriteString("\n\n")

	if m.cursor > 0 && m.cursor <= len(m.visited) {
		current := m.visited[m.cursor-1]
		neighbors := m.graph.Neighbors(current)
		if len(neighbors) == 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  vertex %d has no outgoing edges", current)))
		} else {
			parts := make([]string, len(neighbors))
			for i, w := range neighbors {
				parts[i] = fmt.Sprintf("%d", w)
			}
			b.WriteString(StyleDim.Render(fmt.Sprintf("  vertex %d → %s", current, strings.Join(parts, ", "))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor, len(m.visited))))
	if m.cursor == len(m.visited) {
		b.WriteString("  " + StyleSuccess.Render("done"))
	}
	b.WriteString("\n")

	return b.String()
}
