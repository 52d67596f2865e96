package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aristath/dispatch/internal/events"
)

// LogPaneModel is the scrolling event log: one line per benchmark
// progress event.
type LogPaneModel struct {
	lines    []string
	viewport viewport.Model
	width    int
	height   int
	focused  bool
}

// NewLogPaneModel creates a new log pane model.
func NewLogPaneModel() LogPaneModel {
	return LogPaneModel{
		viewport: viewport.New(0, 0),
	}
}

// Update handles messages for the log pane.
func (m LogPaneModel) Update(msg tea.Msg) (LogPaneModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			break
		}
		m.viewport, cmd = m.viewport.Update(msg)

	case events.RunStartedEvent:
		m.append(fmt.Sprintf("run started: sizes %v, seed %d", msg.Sizes, msg.Seed))

	case events.CaseStartedEvent:
		m.append(fmt.Sprintf("size %d: generating and selecting...", msg.TaskCount))

	case events.CaseFinishedEvent:
		if msg.Gated {
			m.append(fmt.Sprintf("size %d: greedy picked %d jobs in %s (exhaustive over size cap)",
				msg.TaskCount, msg.Greedy.Count, msg.Greedy.Elapsed))
			break
		}
		m.append(fmt.Sprintf("size %d: both selectors picked %d jobs (greedy %s, exhaustive %s)",
			msg.TaskCount, msg.Greedy.Count, msg.Greedy.Elapsed, msg.Exhaustive.Elapsed))

	case events.CaseMismatchEvent:
		m.append(StyleMismatch.Render(fmt.Sprintf("size %d: COUNT MISMATCH greedy=%d exhaustive=%d",
			msg.TaskCount, msg.GreedyCount, msg.ExhaustiveCount)))

	case events.RunFinishedEvent:
		if msg.Failures == 0 {
			m.append(StyleDone.Render(fmt.Sprintf("run finished: %d cases in %s", msg.Cases, msg.Elapsed)))
		} else {
			m.append(StyleMismatch.Render(fmt.Sprintf("run finished: %d of %d cases failed", msg.Failures, msg.Cases)))
		}
	}

	return m, cmd
}

// append adds a line and keeps the viewport pinned to the bottom.
func (m *LogPaneModel) append(line string) {
	m.lines = append(m.lines, line)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// SetSize updates pane dimensions.
func (m *LogPaneModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 2   // border
	m.viewport.Height = height - 3 // border + title
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
}

// SetFocused updates the focus state.
func (m *LogPaneModel) SetFocused(focused bool) {
	m.focused = focused
}

// View renders the log pane.
func (m LogPaneModel) View() string {
	border := StyleUnfocusedBorder
	if m.focused {
		border = StyleFocusedBorder
	}

	content := StyleTitle.Render("Progress") + "\n" + m.viewport.View()
	return border.Width(m.width - 2).Height(m.height - 2).Render(content)
}
