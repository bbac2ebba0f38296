package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected FilingStatus
	}{
		{"single", Single},
		{"Single", Single},
		{"  single  ", Single},
		{"married_filing_jointly", MarriedFilingJointly},
		{"Married Filing Jointly", MarriedFilingJointly},
		{"MFJ", MarriedFilingJointly},
		{"mfs", MarriedFilingSeparately},
		{"Head of Household", HeadOfHousehold},
		{"HoH", HeadOfHousehold},
		{"qualifying_widow", QualifyingWidow},
		{"Qualifying Widow(er)", QualifyingWidow},
		{"QW", QualifyingWidow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fs, err := ParseFilingStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fs)
		})
	}
}

func TestParseFilingStatusUnknown(t *testing.T) {
	_, err := ParseFilingStatus("widowed")
	assert.Error(t, err, "Should reject unrecognized status")

	_, err = ParseFilingStatus("")
	assert.Error(t, err, "Should reject empty status")
}

func TestFilingStatusValid(t *testing.T) {
	for _, fs := range AllFilingStatuses {
		assert.True(t, fs.Valid(), "%s should be valid", fs)
	}
	assert.False(t, FilingStatus("widowed").Valid())
	assert.False(t, FilingStatus("").Valid())
}

func TestFilingStatusUnmarshalYAML(t *testing.T) {
	var fs FilingStatus
	require.NoError(t, yaml.Unmarshal([]byte(`"Married Filing Jointly"`), &fs))
	assert.Equal(t, MarriedFilingJointly, fs)

	err := yaml.Unmarshal([]byte(`"widowed"`), &fs)
	assert.Error(t, err, "Unknown status should fail at the boundary")
}

func TestRealizedGainIsOption(t *testing.T) {
	equity := RealizedGain{Symbol: "VTI"}
	option := RealizedGain{Symbol: "SPY 06/20/2025 450.00 C"}

	assert.False(t, equity.IsOption())
	assert.True(t, option.IsOption())
}

func TestRealizedGainTermAmounts(t *testing.T) {
	dedicated := d(150)
	g := RealizedGain{
		Term:              TermShort,
		GainLoss:          d(200),
		ShortTermGainLoss: &dedicated,
	}

	assert.True(t, g.ShortTermAmount().Equal(dedicated), "Dedicated column should win over total gain/loss")
	assert.True(t, g.LongTermAmount().IsZero(), "Short-term row contributes nothing long-term")

	fallback := RealizedGain{Term: TermLong, GainLoss: d(300)}
	assert.True(t, fallback.LongTermAmount().Equal(d(300)), "Missing dedicated column should fall back to gain/loss")
	assert.True(t, fallback.ShortTermAmount().IsZero())
}

func TestRealizedGainHoldingPeriod(t *testing.T) {
	opened := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	g := RealizedGain{OpenedDate: &opened, ClosedDate: &closed}
	assert.Equal(t, 60, g.HoldingPeriodDays())

	assert.Equal(t, 0, (&RealizedGain{ClosedDate: &closed}).HoldingPeriodDays(), "Missing open date degrades to zero")
}

func TestTransactionIncomeClassification(t *testing.T) {
	dividend := Transaction{Action: ActionCashDividend}
	bond := Transaction{Action: ActionBondInterest}
	credit := Transaction{Action: ActionCreditInterest}
	buy := Transaction{Action: "Buy"}

	assert.True(t, dividend.IsDividend())
	assert.True(t, dividend.IsIncome())
	assert.True(t, bond.IsInterest())
	assert.True(t, credit.IsInterest())
	assert.False(t, buy.IsIncome(), "Trades are not income")
}

func TestInvestmentIncomeAggregation(t *testing.T) {
	ii := InvestmentIncome{
		RealizedGains: []RealizedGain{
			{Symbol: "VTI", Term: TermLong, GainLoss: d(5000)},
			{Symbol: "AAPL", Term: TermShort, GainLoss: d(1200)},
			{Symbol: "SPY 06/20/2025 450.00 C", Term: TermShort, GainLoss: d(-300)},
		},
		Transactions: []Transaction{
			{Action: ActionCashDividend, Amount: d(250)},
			{Action: ActionBondInterest, Amount: d(80)},
			{Action: ActionCreditInterest, Amount: d(20)},
			{Action: "Buy", Amount: d(-10000)},
		},
	}

	assert.True(t, ii.ShortTermCapitalGains().Equal(d(900)), "1200 - 300, got %s", ii.ShortTermCapitalGains())
	assert.True(t, ii.ShortTermOptionsGains().Equal(d(-300)))
	assert.True(t, ii.ShortTermNonOptionsGains().Equal(d(1200)))
	assert.True(t, ii.LongTermCapitalGains().Equal(d(5000)))
	assert.True(t, ii.TotalCapitalGains().Equal(d(5900)))
	assert.True(t, ii.DividendIncome().Equal(d(250)))
	assert.True(t, ii.InterestIncome().Equal(d(100)))
	assert.True(t, ii.TotalInvestmentIncome().Equal(d(6250)))
}

func TestAdditionalIncomeTotalExcludesTaxExempt(t *testing.T) {
	ai := AdditionalIncome{
		Wages:             d(50000),
		BusinessIncome:    d(10000),
		SocialSecurity:    d(20000),
		TaxExemptInterest: d(5000),
	}

	assert.True(t, ai.Total().Equal(d(80000)), "Tax-exempt interest should not count toward total income")
}

func TestDeductionsTotals(t *testing.T) {
	ded := Deductions{
		StandardDeduction:   d(15000),
		ItemizedDeductions:  d(18000),
		StudentLoanInterest: d(2500),
		IRAContributions:    d(7000),
		OtherAdjustments:    d(500),
	}

	assert.True(t, ded.TotalDeductions().Equal(d(18000)), "Larger of standard and itemized")
	assert.True(t, ded.TotalAdjustments().Equal(d(10000)))
}

func TestStandardDeductionSelected(t *testing.T) {
	var inputs UserInputs
	assert.True(t, inputs.StandardDeductionSelected(), "Unset should default to standard")

	f := false
	inputs.UseStandardDeduction = &f
	assert.False(t, inputs.StandardDeductionSelected())

	tr := true
	inputs.UseStandardDeduction = &tr
	assert.True(t, inputs.StandardDeductionSelected())
}

func TestConfigurationYAMLRoundTrip(t *testing.T) {
	input := `
inputs:
  filing_status: single
  tax_year: 2025
  wages: 85000
  target_magi: 120000
  federal_withholding: 9000
investment:
  realized_gains:
    - symbol: VTI
      term: Long Term
      gain_loss: 4200.50
  transactions:
    - action: Cash Dividend
      symbol: VTI
      amount: 310.25
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(input), &cfg))

	assert.Equal(t, Single, cfg.Inputs.FilingStatus)
	assert.Equal(t, 2025, cfg.Inputs.TaxYear)
	assert.True(t, cfg.Inputs.Wages.Equal(d(85000)))
	require.NotNil(t, cfg.Inputs.TargetMAGI)
	assert.True(t, cfg.Inputs.TargetMAGI.Equal(d(120000)))

	require.Len(t, cfg.Investment.RealizedGains, 1)
	assert.True(t, cfg.Investment.RealizedGains[0].GainLoss.Equal(d(4200.50)))
	require.Len(t, cfg.Investment.Transactions, 1)
	assert.True(t, cfg.Investment.Transactions[0].Amount.Equal(d(310.25)))
}
