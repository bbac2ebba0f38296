package calculation

import (
	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RothConversionSolver quantifies the tax impact of converting traditional
// retirement dollars to Roth up to a target MAGI. A conversion is ordinary
// income, so the what-if run adds the gap to additional income and re-runs
// the tax engine with everything else unchanged.
type RothConversionSolver struct {
	taxCalc *TaxCalculator
}

// NewRothConversionSolver creates a solver backed by the given calculator.
func NewRothConversionSolver(taxCalc *TaxCalculator) *RothConversionSolver {
	return &RothConversionSolver{taxCalc: taxCalc}
}

// AnalyzeOpportunity returns the conversion suggestion, or nil when no target
// is supplied or the target does not exceed the current MAGI. The deduction
// basis of the what-if run matches the current result's.
func (rcs *RothConversionSolver) AnalyzeOpportunity(currentMAGI decimal.Decimal, targetMAGI *decimal.Decimal, in TaxInput, current *domain.TaxResult) *domain.RothConversionSuggestion {
	if targetMAGI == nil || targetMAGI.LessThanOrEqual(currentMAGI) {
		return nil
	}

	suggestedConversion := targetMAGI.Sub(currentMAGI)

	whatIf := in
	whatIf.AdditionalIncome = in.AdditionalIncome.Add(suggestedConversion)
	newResult := rcs.taxCalc.Calculate(whatIf)

	// The conversion's cost is the delta across both federal and state tax.
	conversionTax := newResult.TotalTax.Sub(current.TotalTax)

	marginalRate := decimal.Zero
	if suggestedConversion.GreaterThan(decimal.Zero) {
		marginalRate = conversionTax.Div(suggestedConversion).Mul(oneHundred)
	}

	return &domain.RothConversionSuggestion{
		HasOpportunity:      true,
		CurrentMAGI:         currentMAGI,
		TargetMAGI:          *targetMAGI,
		SuggestedConversion: suggestedConversion,
		ConversionTax:       conversionTax,
		CurrentTotalTax:     current.TotalTax,
		NewTotalTax:         newResult.TotalTax,
		MarginalRate:        marginalRate,
		CurrentFederalTax:   current.TotalFederalTax,
		NewFederalTax:       newResult.TotalFederalTax,
		CurrentStateTax:     current.StateTax,
		NewStateTax:         newResult.StateTax,
	}
}
