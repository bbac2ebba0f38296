package calculation

import (
	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TaxInput is the engine's input contract. Amounts are decimals; negative
// short-term gains (net losses) are allowed and reduce ordinary income.
// Deduction overrides the filing status's standard deduction when set.
type TaxInput struct {
	ShortTermGains   decimal.Decimal
	LongTermGains    decimal.Decimal
	DividendIncome   decimal.Decimal
	InterestIncome   decimal.Decimal
	AdditionalIncome decimal.Decimal

	FilingStatus domain.FilingStatus
	Deduction    *decimal.Decimal

	FederalWithholding decimal.Decimal
	PriorYearTax       *decimal.Decimal
}

// TaxCalculator computes the full federal and NC state tax breakdown. It is
// a pure function over its inputs; every call builds a fresh TaxResult.
type TaxCalculator struct {
	Rules *TaxRules
}

// NewTaxCalculator creates a calculator with the 2025 rule tables.
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{Rules: NewTaxRules2025()}
}

// Calculate produces the complete tax breakdown, including the embedded
// quarterly-payment determination.
func (tc *TaxCalculator) Calculate(in TaxInput) *domain.TaxResult {
	// Categorize: short-term gains, interest, and additional income are
	// ordinary; long-term gains and dividends are preferential.
	ordinaryIncome := in.ShortTermGains.Add(in.InterestIncome).Add(in.AdditionalIncome)
	preferentialIncome := in.LongTermGains.Add(in.DividendIncome)
	totalIncome := ordinaryIncome.Add(preferentialIncome)

	deduction := tc.Rules.StandardDeduction(in.FilingStatus)
	if in.Deduction != nil {
		deduction = *in.Deduction
	}

	totalTaxable := decimal.Max(decimal.Zero, totalIncome.Sub(deduction))

	// The deduction consumes ordinary income first; any remainder reduces
	// preferential income. Neither bucket goes negative.
	var taxableOrdinary, taxablePreferential decimal.Decimal
	if totalTaxable.IsZero() {
		taxableOrdinary = decimal.Zero
		taxablePreferential = decimal.Zero
	} else {
		taxableOrdinary = decimal.Max(decimal.Zero, ordinaryIncome.Sub(deduction))
		if ordinaryIncome.GreaterThan(deduction) {
			taxablePreferential = preferentialIncome
		} else {
			remainingDeduction := deduction.Sub(ordinaryIncome)
			taxablePreferential = decimal.Max(decimal.Zero, preferentialIncome.Sub(remainingDeduction))
		}
	}

	federalOrdinaryTax, marginalRate := tc.calculateFederalOrdinaryTax(taxableOrdinary, in.FilingStatus)
	federalPreferentialTax := tc.calculateFederalPreferentialTax(taxablePreferential, taxableOrdinary, in.FilingStatus)
	totalFederalTax := federalOrdinaryTax.Add(federalPreferentialTax)

	stateTaxable, stateTax := tc.calculateStateTax(totalIncome, in.FilingStatus)

	totalTax := totalFederalTax.Add(stateTax)
	afterTaxIncome := totalIncome.Sub(totalTax)

	effectiveRate := decimal.Zero
	if totalIncome.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(totalIncome).Mul(oneHundred)
	}

	return &domain.TaxResult{
		OrdinaryIncome:         ordinaryIncome,
		PreferentialIncome:     preferentialIncome,
		TotalIncome:            totalIncome,
		DeductionUsed:          deduction,
		TaxableIncome:          totalTaxable,
		FederalOrdinaryTax:     federalOrdinaryTax,
		FederalPreferentialTax: federalPreferentialTax,
		TotalFederalTax:        totalFederalTax,
		StateTaxableIncome:     stateTaxable,
		StateTax:               stateTax,
		TotalTax:               totalTax,
		AfterTaxIncome:         afterTaxIncome,
		EffectiveTaxRate:       effectiveRate,
		FederalMarginalRate:    marginalRate.Mul(oneHundred),
		Quarterly:              EvaluateQuarterlyPayments(totalFederalTax, in.FederalWithholding, in.PriorYearTax, in.FilingStatus),
	}
}

// calculateFederalOrdinaryTax walks the progressive schedule in ascending
// threshold order, taxing the slice of income inside each bracket. The
// marginal rate is the rate of the highest bracket touched.
func (tc *TaxCalculator) calculateFederalOrdinaryTax(taxableOrdinary decimal.Decimal, fs domain.FilingStatus) (decimal.Decimal, decimal.Decimal) {
	if taxableOrdinary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}

	brackets := tc.Rules.FederalBracketsFor(fs)
	tax := decimal.Zero
	marginalRate := decimal.Zero
	previousThreshold := decimal.Zero

	for _, bracket := range brackets {
		if taxableOrdinary.LessThanOrEqual(previousThreshold) {
			break
		}
		taxableInBracket := decimal.Min(taxableOrdinary, bracket.Threshold).Sub(previousThreshold)
		tax = tax.Add(taxableInBracket.Mul(bracket.Rate))
		marginalRate = bracket.Rate

		if taxableOrdinary.LessThanOrEqual(bracket.Threshold) {
			break
		}
		previousThreshold = bracket.Threshold
	}

	return tax, marginalRate
}

// calculateFederalPreferentialTax taxes preferential income stacked on top of
// ordinary income within the separate 0/15/20 schedule. Ordinary income fixes
// the starting position in the stack; it determines which preferential
// brackets still have room, not how much tax it pays itself.
func (tc *TaxCalculator) calculateFederalPreferentialTax(preferentialIncome, ordinaryIncome decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	if preferentialIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	brackets := tc.Rules.LTCGBracketsFor(fs)
	tax := decimal.Zero
	incomePosition := ordinaryIncome
	remaining := preferentialIncome
	previousThreshold := decimal.Zero

	for _, bracket := range brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		bracketStart := decimal.Max(incomePosition, previousThreshold)
		bracketEnd := bracket.Threshold
		if bracketStart.GreaterThanOrEqual(bracketEnd) {
			previousThreshold = bracket.Threshold
			continue
		}

		amountInBracket := decimal.Min(remaining, bracketEnd.Sub(bracketStart))
		tax = tax.Add(amountInBracket.Mul(bracket.Rate))
		remaining = remaining.Sub(amountInBracket)
		incomePosition = incomePosition.Add(amountInBracket)
		previousThreshold = bracket.Threshold
	}

	return tax
}

// calculateStateTax applies NC's flat rate to total income minus the NC
// standard deduction. The state base is total income, not federal taxable
// income.
func (tc *TaxCalculator) calculateStateTax(totalIncome decimal.Decimal, fs domain.FilingStatus) (decimal.Decimal, decimal.Decimal) {
	taxable := decimal.Max(decimal.Zero, totalIncome.Sub(tc.Rules.StateDeduction(fs)))
	return taxable, taxable.Mul(tc.Rules.StateRate)
}
