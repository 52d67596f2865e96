package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aristath/dispatch/internal/bench"
	"github.com/aristath/dispatch/internal/events"
	"github.com/aristath/dispatch/internal/report"
)

// ResultsPaneModel accumulates finished cases and renders them as the
// same table the plain reporter prints.
type ResultsPaneModel struct {
	cases   []bench.Case
	width   int
	height  int
	focused bool
	done    bool
}

// NewResultsPaneModel creates a new results pane model.
func NewResultsPaneModel() ResultsPaneModel {
	return ResultsPaneModel{}
}

// Update handles messages for the results pane.
func (m ResultsPaneModel) Update(msg tea.Msg) (ResultsPaneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case events.CaseFinishedEvent:
		m.cases = append(m.cases, bench.Case{
			Size:       msg.TaskCount,
			Greedy:     msg.Greedy,
			Exhaustive: msg.Exhaustive,
			Gated:      msg.Gated,
			Match:      msg.Gated || msg.Greedy.Count == msg.Exhaustive.Count,
		})
		// Cases finish in worker order; display by size.
		sort.Slice(m.cases, func(i, j int) bool { return m.cases[i].Size < m.cases[j].Size })

	case events.RunFinishedEvent:
		m.done = true
	}

	return m, nil
}

// SetSize updates pane dimensions.
func (m *ResultsPaneModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused updates the focus state.
func (m *ResultsPaneModel) SetFocused(focused bool) {
	m.focused = focused
}

// View renders the results pane.
func (m ResultsPaneModel) View() string {
	border := StyleUnfocusedBorder
	if m.focused {
		border = StyleFocusedBorder
	}

	title := StyleTitle.Render("Results")
	if m.done {
		title += " " + StyleDone.Render("(complete)")
	} else {
		title += " " + StyleRunning.Render("(running)")
	}

	body := "waiting for first case..."
	if len(m.cases) > 0 {
		body = report.Table(m.cases)
	}

	return border.Width(m.width - 2).Height(m.height - 2).Render(title + "\n" + body)
}
