package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aristath/dispatch/internal/events"
)

// PaneID identifies which pane is focused.
type PaneID int

const (
	PaneLog PaneID = iota
	PaneResults
)

// Model is the root Bubble Tea model for the live benchmark view.
type Model struct {
	logPane     LogPaneModel
	resultsPane ResultsPaneModel
	focusedPane PaneID
	eventSub    <-chan events.Event
	width       int
	height      int
	quitting    bool
}

// New creates a new TUI model subscribed to the bench topic.
func New(eventBus *events.EventBus) Model {
	return Model{
		logPane:     NewLogPaneModel(),
		resultsPane: NewResultsPaneModel(),
		focusedPane: PaneLog,
		eventSub:    eventBus.Subscribe(events.TopicBench, 256),
	}
}

// Init initializes the model and returns the initial command.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.eventSub)
}

// waitForEvent returns a command that waits for the next event from
// the event bus.
func waitForEvent(sub <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-sub
		if !ok {
			return nil // bus closed
		}
		return event
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case KeyTab:
			if m.focusedPane == PaneLog {
				m.focusedPane = PaneResults
			} else {
				m.focusedPane = PaneLog
			}
			m.updateFocusStates()

		default:
			var cmd tea.Cmd
			m.logPane, cmd = m.logPane.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.computeLayout()

	case events.Event:
		// Both panes see every bench event; each picks what it needs.
		var cmd tea.Cmd
		m.logPane, cmd = m.logPane.Update(msg)
		cmds = append(cmds, cmd)
		m.resultsPane, cmd = m.resultsPane.Update(msg)
		cmds = append(cmds, cmd)
		cmds = append(cmds, waitForEvent(m.eventSub))
	}

	return m, tea.Batch(cmds...)
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.logPane.View(), m.resultsPane.View())
	return lipgloss.JoinVertical(lipgloss.Left, main, HelpView())
}

// computeLayout calculates pane dimensions and updates child models.
func (m *Model) computeLayout() {
	availableHeight := m.height - 1 // reserve 1 line for help bar
	logHeight := (availableHeight * 40) / 100
	resultsHeight := availableHeight - logHeight

	m.logPane.SetSize(m.width, logHeight)
	m.resultsPane.SetSize(m.width, resultsHeight)

	m.updateFocusStates()
}

// updateFocusStates updates the focus state of both panes.
func (m *Model) updateFocusStates() {
	m.logPane.SetFocused(m.focusedPane == PaneLog)
	m.resultsPane.SetFocused(m.focusedPane == PaneResults)
}
