package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.loading = false
		m.seedForm()
		// Run the initial calculation straight from the file
		m.loading = true
		m.loadingMessage = "Calculating..."
		return m, calculateCmd(m.calcEngine, *m.config)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.result = msg.Result
		}
		return m, nil
	}

	return m.updateForm(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error screen swallows the next key press
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		// Quit unless a form field is capturing text
		if m.currentScene != SceneForm {
			return m, tea.Quit
		}

	case "?":
		if m.currentScene != SceneHelp {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneHelp}
			}
		}

	case "esc":
		if m.currentScene != SceneForm {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneForm}
			}
		}
		return m, tea.Quit

	case "r":
		if m.currentScene != SceneResults && m.currentScene != SceneForm {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneResults}
			}
		}

	case "tab", "down":
		if m.currentScene == SceneForm {
			return m.moveFocus(1)
		}

	case "shift+tab", "up":
		if m.currentScene == SceneForm {
			return m.moveFocus(-1)
		}

	case "enter":
		if m.currentScene == SceneForm && m.config != nil {
			m.loading = true
			m.loadingMessage = "Calculating..."
			m.previousScene = m.currentScene
			m.currentScene = SceneResults
			return m, calculateCmd(m.calcEngine, m.effectiveConfig())
		}
	}

	return m.updateForm(msg)
}

// moveFocus shifts form focus by delta, wrapping around
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + delta + fieldCount) % fieldCount
	return m, m.inputs[m.focused].Focus()
}

// updateForm delegates remaining messages to the focused text input
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentScene != SceneForm {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
