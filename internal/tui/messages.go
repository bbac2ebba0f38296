package tui

import (
	"github.com/rmoore2112/magi-calculator/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
	SceneHelp
)

// GetSceneName returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Inputs"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg signals a calculation has finished
type CalculationCompleteMsg struct {
	Result *domain.MAGIResult
	Err    error
}
