package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render(m.loadingText()))
	}

	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
		))
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.renderForm()
	case SceneResults:
		content = m.renderResults()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

func (m Model) loadingText() string {
	if m.loadingMessage != "" {
		return m.loadingMessage
	}
	return "Loading..."
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)
	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("MAGI Calculator")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	if m.config != nil {
		breadcrumb = SubtitleStyle.Render(
			fmt.Sprintf("%s / %s, %d", m.currentScene.String(),
				m.config.Inputs.FilingStatus.String(), m.config.Inputs.TaxYear),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "next field"),
		formatShortcut("enter", "calculate"),
		formatShortcut("r", "results"),
		formatShortcut("?", "help"),
		formatShortcut("esc", "back"),
		formatShortcut("ctrl+c", "quit"),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " | "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderForm renders the editable input fields
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString("Adjust inputs, then press enter to recalculate.\n\n")
	for i := range m.inputs {
		cursor := "  "
		if i == m.focused {
			cursor = HighlightStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(LabelStyle.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	return FocusedBorderStyle.Render(b.String())
}

// renderResults renders the full calculation breakdown
func (m Model) renderResults() string {
	if m.result == nil {
		return BorderStyle.Render("No results yet. Press enter on the input form to calculate.")
	}
	r := m.result

	var b strings.Builder
	b.WriteString(SectionStyle.Render("MAGI") + "\n")
	writeRow(&b, "Total Income", money(r.TotalIncome))
	writeRow(&b, "AGI", money(r.AGI))
	b.WriteString(LabelStyle.Render("MAGI") + HighlightStyle.Render(money(r.MAGI)) + "\n")
	writeRow(&b, "IRMAA Tier", r.IRMAA.Tier)
	writeRow(&b, "ACA Subsidy Eligible", yesNo(r.ACASubsidyEligible))

	if tax := r.TaxResult; tax != nil {
		b.WriteString(SectionStyle.Render("Taxes") + "\n")
		writeRow(&b, "Taxable Income", money(tax.TaxableIncome))
		writeRow(&b, "Federal Tax", money(tax.TotalFederalTax))
		writeRow(&b, "State Tax", money(tax.StateTax))
		writeRow(&b, "Total Tax", money(tax.TotalTax))
		writeRow(&b, "Effective Rate", tax.EffectiveTaxRate.StringFixed(2)+"%")
		writeRow(&b, "Marginal Rate", tax.FederalMarginalRate.StringFixed(2)+"%")

		if q := tax.Quarterly; q != nil {
			b.WriteString(SectionStyle.Render("Quarterly Payments") + "\n")
			if q.Required {
				b.WriteString(LabelStyle.Render("Required") + WarnStyle.Render("yes") + "\n")
				writeRow(&b, "Per Quarter", money(q.EstimatedPayment))
			} else {
				writeRow(&b, "Required", "no")
			}
			writeRow(&b, "Safe Harbor", money(q.SafeHarborAmount))
			writeRow(&b, "Reason", q.Reason)
		}
	}

	if roth := r.RothSuggestion; roth != nil {
		b.WriteString(SectionStyle.Render("Roth Conversion") + "\n")
		writeRow(&b, "Suggested Conversion", money(roth.SuggestedConversion))
		writeRow(&b, "Conversion Tax", money(roth.ConversionTax))
		writeRow(&b, "Marginal Rate", roth.MarginalRate.StringFixed(2)+"%")
	}

	return BorderStyle.Render(b.String())
}

func (m Model) renderHelp() string {
	helpText := `MAGI Calculator

KEYBOARD SHORTCUTS:
  tab/down   Next input field
  shift+tab  Previous input field
  enter      Recalculate with current inputs
  r          Show results
  ?          Show this help
  esc        Go back
  ctrl+c     Quit

The form overrides values from the loaded configuration file.
Blank out Target MAGI or Prior Year Tax to drop them entirely.
`
	return BorderStyle.Render(helpText)
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
