package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.TaxCalc, "Should initialize tax calculator")
	assert.NotNil(t, engine.RothSolver, "Should initialize conversion solver")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculateInvalidFilingStatus(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{FilingStatus: "widowed"},
	}
	result, err := engine.Calculate(cfg)

	assert.Error(t, err, "Should reject unknown filing status")
	assert.Nil(t, result, "Should return nil result")
	assert.Contains(t, err.Error(), "invalid filing status")
}

func TestCalculateWagesOnly(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus: domain.Single,
			TaxYear:      2025,
			Wages:        d(60000),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	assert.True(t, result.TotalIncome.Equal(d(60000)))
	assert.True(t, result.AGI.Equal(d(60000)), "No adjustments, AGI equals total income")
	assert.True(t, result.MAGI.Equal(d(60000)), "No addbacks, MAGI equals AGI")

	require.NotNil(t, result.TaxResult)
	assert.True(t, result.TaxResult.TaxableIncome.Equal(d(45000)))
	assert.True(t, result.TaxResult.TotalFederalTax.Equal(d(5161.50)), "Expected 5161.50, got %s", result.TaxResult.TotalFederalTax)
	assert.Nil(t, result.RothSuggestion, "No target MAGI, no suggestion")
}

func TestCalculateMAGIAddsBackAdjustments(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus:        domain.Single,
			Wages:               d(100000),
			StudentLoanInterest: d(2500),
			IRAContributions:    d(7000),
			HSAContributions:    d(4000),
			TaxExemptInterest:   d(1200),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	// AGI = 100000 - (2500 + 7000 + 4000) = 86500
	assert.True(t, result.AGI.Equal(d(86500)), "Expected AGI 86500, got %s", result.AGI)
	// MAGI adds back tax-exempt interest, student loan interest, and IRA
	// contributions, but not HSA: 86500 + 1200 + 2500 + 7000 = 97200
	assert.True(t, result.MAGI.Equal(d(97200)), "Expected MAGI 97200, got %s", result.MAGI)
}

func TestCalculateInvestmentIncome(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{FilingStatus: domain.Single},
		Investment: domain.InvestmentIncome{
			RealizedGains: []domain.RealizedGain{
				{Symbol: "VTI", Term: domain.TermLong, GainLoss: d(12000)},
				{Symbol: "SPY 06/20/2025 550.00 C", Term: domain.TermShort, GainLoss: d(3000)},
			},
			Transactions: []domain.Transaction{
				{Symbol: "VTI", Action: domain.ActionCashDividend, Amount: d(800)},
			},
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	assert.True(t, result.TotalIncome.Equal(d(15800)), "Expected 15800, got %s", result.TotalIncome)

	inv := result.IncomeBreakdown.Investment
	assert.True(t, inv.LongTermCapitalGains.Equal(d(12000)))
	assert.True(t, inv.ShortTermCapitalGains.Equal(d(3000)))
	assert.True(t, inv.ShortTermOptionsGains.Equal(d(3000)), "Symbol with a space is an option")
	assert.True(t, inv.ShortTermNonOptionsGains.IsZero())
	assert.True(t, inv.DividendIncome.Equal(d(800)))
}

func TestCalculateItemizedDeduction(t *testing.T) {
	engine := NewCalculationEngine()

	useStandard := false
	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus:         domain.Single,
			Wages:                d(100000),
			UseStandardDeduction: &useStandard,
			ItemizedDeductions:   d(22000),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	require.NotNil(t, result.TaxResult)
	assert.True(t, result.TaxResult.DeductionUsed.Equal(d(22000)), "Itemized amount should be used, got %s", result.TaxResult.DeductionUsed)
	assert.True(t, result.DeductionsBreakdown.ItemizedDeductions.Equal(d(22000)))
	assert.True(t, result.DeductionsBreakdown.StandardDeduction.IsZero(), "Only the chosen deduction carries an amount")
}

func TestCalculateStandardDeductionDefault(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus:       domain.MarriedFilingJointly,
			Wages:              d(100000),
			ItemizedDeductions: d(22000),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	assert.True(t, result.TaxResult.DeductionUsed.Equal(d(30000)), "Unset selection should mean the standard deduction")
	assert.True(t, result.DeductionsBreakdown.ItemizedDeductions.IsZero())
}

func TestCalculateRothSuggestion(t *testing.T) {
	engine := NewCalculationEngine()

	target := d(50000)
	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus: domain.Single,
			Wages:        d(30000),
			TargetMAGI:   &target,
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	require.NotNil(t, result.RothSuggestion)
	assert.True(t, result.RothSuggestion.SuggestedConversion.Equal(d(20000)))
	assert.True(t, result.RothSuggestion.ConversionTax.GreaterThan(decimal.Zero))
}

func TestCalculatePopulatesIRMAAAndACA(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus: domain.Single,
			Wages:        d(150000),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	assert.Equal(t, "Tier 2", result.IRMAA.Tier)
	assert.True(t, result.IRMAA.MAGI.Equal(result.MAGI))
	assert.False(t, result.ACASubsidyEligible, "150000 is well past the single threshold")
}

func TestCalculateQuarterlyEmbedded(t *testing.T) {
	engine := NewCalculationEngine()

	cfg := &domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus:       domain.Single,
			Wages:              d(200000),
			FederalWithholding: d(10000),
		},
	}
	result, err := engine.Calculate(cfg)

	require.NoError(t, err)
	require.NotNil(t, result.TaxResult.Quarterly)
	assert.True(t, result.TaxResult.Quarterly.Required, "Low withholding against a large tax should require payments")
	assert.True(t, result.TaxResult.Quarterly.EstimatedPayment.GreaterThan(decimal.Zero))
}
