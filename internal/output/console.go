package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(30)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
)

// ConsoleFormatter renders the full analysis as a styled terminal report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.MAGIResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result cannot be nil")
	}

	var buf bytes.Buffer
	line := func(label string, value string) {
		buf.WriteString(labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n")
	}

	buf.WriteString(titleStyle.Render(fmt.Sprintf("MAGI & TAX ANALYSIS — %s, %d", result.FilingStatus, result.TaxYear)) + "\n")

	inv := result.IncomeBreakdown.Investment
	buf.WriteString(sectionStyle.Render("INVESTMENT INCOME") + "\n")
	line("Short-term capital gains", FormatCurrency(inv.ShortTermCapitalGains))
	line("  options", FormatCurrency(inv.ShortTermOptionsGains))
	line("  non-options", FormatCurrency(inv.ShortTermNonOptionsGains))
	line("Long-term capital gains", FormatCurrency(inv.LongTermCapitalGains))
	line("Dividend income", FormatCurrency(inv.DividendIncome))
	line("Interest income", FormatCurrency(inv.InterestIncome))
	line("Total investment income", FormatCurrency(inv.Total))

	add := result.IncomeBreakdown.Additional
	if !add.Total.IsZero() {
		buf.WriteString(sectionStyle.Render("ADDITIONAL INCOME") + "\n")
		line("Wages", FormatCurrency(add.Wages))
		line("Business income", FormatCurrency(add.BusinessIncome))
		line("Rental income", FormatCurrency(add.RentalIncome))
		line("Retirement income", FormatCurrency(add.RetirementIncome))
		line("Social Security", FormatCurrency(add.SocialSecurity))
		line("Other income", FormatCurrency(add.OtherIncome))
		line("Total additional income", FormatCurrency(add.Total))
	}

	buf.WriteString(sectionStyle.Render("MAGI") + "\n")
	line("Total income", FormatCurrency(result.TotalIncome))
	line("AGI", FormatCurrency(result.AGI))
	buf.WriteString(labelStyle.Render("MAGI") + " " + highlightStyle.Render(FormatCurrency(result.MAGI)) + "\n")
	line("IRMAA tier", result.IRMAA.Tier)
	if result.ACASubsidyEligible {
		line("ACA premium tax credit", "likely eligible")
	} else {
		line("ACA premium tax credit", "not eligible")
	}

	if tax := result.TaxResult; tax != nil {
		buf.WriteString(sectionStyle.Render("TAX BREAKDOWN") + "\n")
		line("Ordinary income", FormatCurrency(tax.OrdinaryIncome))
		line("Preferential income", FormatCurrency(tax.PreferentialIncome))
		line("Deduction", FormatCurrency(tax.DeductionUsed))
		line("Taxable income", FormatCurrency(tax.TaxableIncome))
		line("Federal ordinary tax", FormatCurrency(tax.FederalOrdinaryTax))
		line("Federal preferential tax", FormatCurrency(tax.FederalPreferentialTax))
		line("Total federal tax", FormatCurrency(tax.TotalFederalTax))
		line("NC taxable income", FormatCurrency(tax.StateTaxableIncome))
		line("NC state tax (4.75%)", FormatCurrency(tax.StateTax))
		buf.WriteString(labelStyle.Render("TOTAL TAX") + " " + highlightStyle.Render(FormatCurrency(tax.TotalTax)) + "\n")
		line("After-tax income", FormatCurrency(tax.AfterTaxIncome))
		line("Effective tax rate", FormatPercentage(tax.EffectiveTaxRate))
		line("Federal marginal rate", FormatPercentage(tax.FederalMarginalRate))

		if q := tax.Quarterly; q != nil {
			buf.WriteString(sectionStyle.Render("ESTIMATED QUARTERLY PAYMENTS") + "\n")
			if q.Required {
				buf.WriteString(labelStyle.Render("Required") + " " + warnStyle.Render("yes") + "\n")
				line("Quarterly payment", FormatCurrency(q.EstimatedPayment))
			} else {
				line("Required", "no")
			}
			line("Total underpayment", FormatCurrency(q.TotalUnderpayment))
			line("Safe harbor amount", FormatCurrency(q.SafeHarborAmount))
			line("Reason", q.Reason)
		}
	}

	if roth := result.RothSuggestion; roth != nil {
		buf.WriteString(sectionStyle.Render("ROTH CONVERSION OPPORTUNITY") + "\n")
		line("Current MAGI", FormatCurrency(roth.CurrentMAGI))
		line("Target MAGI", FormatCurrency(roth.TargetMAGI))
		buf.WriteString(labelStyle.Render("Suggested conversion") + " " + highlightStyle.Render(FormatCurrency(roth.SuggestedConversion)) + "\n")
		line("Tax on conversion", FormatCurrency(roth.ConversionTax))
		line("Marginal rate on conversion", FormatPercentage(roth.MarginalRate))
		line("Total tax (current → new)", fmt.Sprintf("%s → %s", FormatCurrency(roth.CurrentTotalTax), FormatCurrency(roth.NewTotalTax)))
		line("Federal (current → new)", fmt.Sprintf("%s → %s", FormatCurrency(roth.CurrentFederalTax), FormatCurrency(roth.NewFederalTax)))
		line("State (current → new)", fmt.Sprintf("%s → %s", FormatCurrency(roth.CurrentStateTax), FormatCurrency(roth.NewStateTax)))
	}

	buf.WriteString("\n")
	return buf.Bytes(), nil
}
