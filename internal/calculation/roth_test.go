package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

func TestRothNoTarget(t *testing.T) {
	tc := NewTaxCalculator()
	solver := NewRothConversionSolver(tc)

	in := TaxInput{AdditionalIncome: d(30000), FilingStatus: domain.Single}
	current := tc.Calculate(in)

	assert.Nil(t, solver.AnalyzeOpportunity(d(30000), nil, in, current), "No target should mean no suggestion")
}

func TestRothTargetBelowCurrent(t *testing.T) {
	tc := NewTaxCalculator()
	solver := NewRothConversionSolver(tc)

	in := TaxInput{AdditionalIncome: d(80000), FilingStatus: domain.Single}
	current := tc.Calculate(in)

	target := d(50000)
	assert.Nil(t, solver.AnalyzeOpportunity(d(80000), &target, in, current), "Target below current MAGI should mean no suggestion")

	equal := d(80000)
	assert.Nil(t, solver.AnalyzeOpportunity(d(80000), &equal, in, current), "Target equal to current MAGI should mean no suggestion")
}

func TestRothConversionAmount(t *testing.T) {
	tc := NewTaxCalculator()
	solver := NewRothConversionSolver(tc)

	in := TaxInput{AdditionalIncome: d(30000), FilingStatus: domain.Single}
	current := tc.Calculate(in)

	target := d(50000)
	suggestion := solver.AnalyzeOpportunity(d(30000), &target, in, current)

	require.NotNil(t, suggestion)
	assert.True(t, suggestion.HasOpportunity)
	assert.True(t, suggestion.SuggestedConversion.Equal(d(20000)), "Conversion should be exactly the MAGI gap, got %s", suggestion.SuggestedConversion)
	assert.True(t, suggestion.CurrentMAGI.Equal(d(30000)))
	assert.True(t, suggestion.TargetMAGI.Equal(target))
}

func TestRothConversionTaxDelta(t *testing.T) {
	tc := NewTaxCalculator()
	solver := NewRothConversionSolver(tc)

	in := TaxInput{AdditionalIncome: d(30000), FilingStatus: domain.Single}
	current := tc.Calculate(in)

	target := d(50000)
	suggestion := solver.AnalyzeOpportunity(d(30000), &target, in, current)
	require.NotNil(t, suggestion)

	// Current: taxable 15000 -> 1192.50 + 3075*0.12 = 1561.50 federal;
	// state 17250*0.0475 = 819.375. With the conversion: taxable 35000 ->
	// 1192.50 + 23075*0.12 = 3961.50 federal; state 37250*0.0475 = 1769.375.
	assert.True(t, suggestion.ConversionTax.Equal(d(3350)), "Conversion tax should be 3350, got %s", suggestion.ConversionTax)
	assert.True(t, suggestion.MarginalRate.Equal(d(16.75)), "Marginal rate should be 16.75%%, got %s", suggestion.MarginalRate)

	assert.True(t, suggestion.NewTotalTax.Sub(suggestion.CurrentTotalTax).Equal(suggestion.ConversionTax), "Delta should reconcile with the before/after totals")
	assert.True(t, suggestion.ConversionTax.GreaterThanOrEqual(decimal.Zero), "Converting more income should never reduce tax")
}

func TestRothPreservesOtherInputs(t *testing.T) {
	tc := NewTaxCalculator()
	solver := NewRothConversionSolver(tc)

	in := TaxInput{
		AdditionalIncome: d(40000),
		LongTermGains:    d(10000),
		FilingStatus:     domain.MarriedFilingJointly,
	}
	current := tc.Calculate(in)

	target := d(90000)
	suggestion := solver.AnalyzeOpportunity(d(50000), &target, in, current)
	require.NotNil(t, suggestion)

	// The what-if run must not mutate the caller's input.
	assert.True(t, in.AdditionalIncome.Equal(d(40000)), "Input should be unchanged after analysis")
	assert.True(t, suggestion.SuggestedConversion.Equal(d(40000)))
	assert.True(t, suggestion.NewFederalTax.GreaterThanOrEqual(suggestion.CurrentFederalTax), "Federal tax should not fall")
	assert.True(t, suggestion.NewStateTax.GreaterThanOrEqual(suggestion.CurrentStateTax), "State tax should not fall")
}
