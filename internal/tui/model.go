package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rmoore2112/magi-calculator/internal/calculation"
	"github.com/rmoore2112/magi-calculator/internal/config"
	"github.com/rmoore2112/magi-calculator/internal/domain"
)

// Indexes into the form inputs; order matches the rendered form.
const (
	fieldTargetMAGI = iota
	fieldWages
	fieldWithholding
	fieldPriorYearTax
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Target MAGI",
	"Wages",
	"Federal Withholding",
	"Prior Year Tax",
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// Calculation engine
	calcEngine *calculation.CalculationEngine

	// Form inputs overriding the loaded configuration
	inputs  [fieldCount]textinput.Model
	focused int

	// Latest calculation
	result *domain.MAGIResult

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	m := Model{
		currentScene: SceneForm,
		configPath:   configPath,
		calcEngine:   calculation.NewCalculationEngine(),
		width:        80,
		height:       24,
		loading:      true,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 12
		ti.Width = 16
		m.inputs[i] = ti
	}
	m.inputs[fieldTargetMAGI].Placeholder = "none"
	m.inputs[fieldPriorYearTax].Placeholder = "none"
	m.inputs[m.focused].Focus()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd returns a command that runs the engine on a configuration copy
func calculateCmd(engine *calculation.CalculationEngine, cfg domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Calculate(&cfg)
		return CalculationCompleteMsg{Result: result, Err: err}
	}
}

// seedForm fills the form fields from the loaded configuration
func (m *Model) seedForm() {
	inputs := m.config.Inputs
	if inputs.TargetMAGI != nil {
		m.inputs[fieldTargetMAGI].SetValue(inputs.TargetMAGI.StringFixed(0))
	}
	m.inputs[fieldWages].SetValue(inputs.Wages.StringFixed(0))
	m.inputs[fieldWithholding].SetValue(inputs.FederalWithholding.StringFixed(0))
	if inputs.PriorYearTax != nil {
		m.inputs[fieldPriorYearTax].SetValue(inputs.PriorYearTax.StringFixed(0))
	}
}

// effectiveConfig applies the form overrides to a copy of the loaded
// configuration. A blank optional field clears the corresponding input.
func (m *Model) effectiveConfig() domain.Configuration {
	cfg := *m.config
	cfg.Inputs.TargetMAGI = parseOptional(m.inputs[fieldTargetMAGI].Value())
	cfg.Inputs.PriorYearTax = parseOptional(m.inputs[fieldPriorYearTax].Value())
	if v, err := decimal.NewFromString(m.inputs[fieldWages].Value()); err == nil {
		cfg.Inputs.Wages = v
	}
	if v, err := decimal.NewFromString(m.inputs[fieldWithholding].Value()); err == nil {
		cfg.Inputs.FederalWithholding = v
	}
	return cfg
}

func parseOptional(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &v
}
