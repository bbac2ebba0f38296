package calculation

import (
	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX RULE ASSUMPTIONS:
//
// 1. All brackets, deductions, and thresholds are 2025 tax-year values.
//    No inflation indexing; multi-year generality is out of scope.
//
// 2. North Carolina state tax: 4.75% flat rate on total income minus the
//    NC standard deduction. The federal deduction does not reduce the state
//    base.
//
// 3. Dividends are always treated as qualified (preferential); there is no
//    unqualified-dividend split in the source data.
//
// 4. Lookups for a filing status missing from a table fall back to the
//    Single row. This mirrors the upstream data tables and is deliberate;
//    unknown statuses are rejected earlier, at the input boundary.

// TaxBracket is one rung of a progressive schedule: everything at or below
// Threshold (and above the previous rung) is taxed at Rate. The last rung's
// threshold is effectively infinite.
type TaxBracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// IRMAATier is one Medicare premium tier: the first tier whose Threshold
// is >= MAGI applies.
type IRMAATier struct {
	Threshold decimal.Decimal
	Label     string
}

// TaxRules holds the static per-status tables for one tax year.
type TaxRules struct {
	Year int

	FederalBrackets    map[domain.FilingStatus][]TaxBracket
	LTCGBrackets       map[domain.FilingStatus][]TaxBracket
	StandardDeductions map[domain.FilingStatus]decimal.Decimal

	StateRate       decimal.Decimal
	StateDeductions map[domain.FilingStatus]decimal.Decimal

	IRMAAThresholds map[domain.FilingStatus][]IRMAATier

	ACASingleThreshold    decimal.Decimal
	ACAFamilyOf4Threshold decimal.Decimal
}

// top is the sentinel upper bound of the last bracket in every table.
var top = decimal.NewFromInt(999999999)

// NewTaxRules2025 builds the 2025 rule tables.
func NewTaxRules2025() *TaxRules {
	return &TaxRules{
		Year: 2025,
		FederalBrackets: map[domain.FilingStatus][]TaxBracket{
			domain.Single: {
				{decimal.NewFromInt(11925), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(48475), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(103350), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(197300), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(250525), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(626350), decimal.NewFromFloat(0.35)},
				{top, decimal.NewFromFloat(0.37)},
			},
			domain.MarriedFilingJointly: {
				{decimal.NewFromInt(23850), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(96950), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(206700), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(394600), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(501050), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(751600), decimal.NewFromFloat(0.35)},
				{top, decimal.NewFromFloat(0.37)},
			},
			domain.MarriedFilingSeparately: {
				{decimal.NewFromInt(11925), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(48475), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(103350), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(197300), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(250525), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(375800), decimal.NewFromFloat(0.35)},
				{top, decimal.NewFromFloat(0.37)},
			},
			domain.HeadOfHousehold: {
				{decimal.NewFromInt(17000), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(64850), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(103350), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(197300), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(250500), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(626350), decimal.NewFromFloat(0.35)},
				{top, decimal.NewFromFloat(0.37)},
			},
			domain.QualifyingWidow: {
				{decimal.NewFromInt(23850), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(96950), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(206700), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(394600), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(501050), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(751600), decimal.NewFromFloat(0.35)},
				{top, decimal.NewFromFloat(0.37)},
			},
		},
		LTCGBrackets: map[domain.FilingStatus][]TaxBracket{
			domain.Single: {
				{decimal.NewFromInt(48350), decimal.Zero},
				{decimal.NewFromInt(533400), decimal.NewFromFloat(0.15)},
				{top, decimal.NewFromFloat(0.20)},
			},
			domain.MarriedFilingJointly: {
				{decimal.NewFromInt(96700), decimal.Zero},
				{decimal.NewFromInt(600050), decimal.NewFromFloat(0.15)},
				{top, decimal.NewFromFloat(0.20)},
			},
			domain.MarriedFilingSeparately: {
				{decimal.NewFromInt(48350), decimal.Zero},
				{decimal.NewFromInt(300025), decimal.NewFromFloat(0.15)},
				{top, decimal.NewFromFloat(0.20)},
			},
			domain.HeadOfHousehold: {
				{decimal.NewFromInt(64750), decimal.Zero},
				{decimal.NewFromInt(566700), decimal.NewFromFloat(0.15)},
				{top, decimal.NewFromFloat(0.20)},
			},
			domain.QualifyingWidow: {
				{decimal.NewFromInt(96700), decimal.Zero},
				{decimal.NewFromInt(600050), decimal.NewFromFloat(0.15)},
				{top, decimal.NewFromFloat(0.20)},
			},
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                  decimal.NewFromInt(15000),
			domain.MarriedFilingJointly:    decimal.NewFromInt(30000),
			domain.MarriedFilingSeparately: decimal.NewFromInt(15000),
			domain.HeadOfHousehold:         decimal.NewFromInt(22500),
			domain.QualifyingWidow:         decimal.NewFromInt(30000),
		},
		StateRate: decimal.NewFromFloat(0.0475),
		StateDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                  decimal.NewFromInt(12750),
			domain.MarriedFilingJointly:    decimal.NewFromInt(25500),
			domain.MarriedFilingSeparately: decimal.NewFromInt(12750),
			domain.HeadOfHousehold:         decimal.NewFromInt(19125),
			domain.QualifyingWidow:         decimal.NewFromInt(25500),
		},
		// MFS shares the Single tiers; MFJ has its own. HoH and QW are not
		// listed upstream and take the Single fallback.
		IRMAAThresholds: map[domain.FilingStatus][]IRMAATier{
			domain.Single: {
				{decimal.NewFromInt(106000), "Standard premium"},
				{decimal.NewFromInt(133000), "Tier 1"},
				{decimal.NewFromInt(167000), "Tier 2"},
				{decimal.NewFromInt(200000), "Tier 3"},
				{decimal.NewFromInt(500000), "Tier 4"},
				{top, "Tier 5"},
			},
			domain.MarriedFilingJointly: {
				{decimal.NewFromInt(212000), "Standard premium"},
				{decimal.NewFromInt(266000), "Tier 1"},
				{decimal.NewFromInt(334000), "Tier 2"},
				{decimal.NewFromInt(400000), "Tier 3"},
				{decimal.NewFromInt(750000), "Tier 4"},
				{top, "Tier 5"},
			},
			domain.MarriedFilingSeparately: {
				{decimal.NewFromInt(106000), "Standard premium"},
				{decimal.NewFromInt(133000), "Tier 1"},
				{decimal.NewFromInt(167000), "Tier 2"},
				{decimal.NewFromInt(200000), "Tier 3"},
				{decimal.NewFromInt(500000), "Tier 4"},
				{top, "Tier 5"},
			},
		},
		ACASingleThreshold:    decimal.NewFromInt(60000),
		ACAFamilyOf4Threshold: decimal.NewFromInt(120000),
	}
}

// FederalBracketsFor returns the ordinary-income schedule for a status,
// falling back to Single for unlisted statuses.
func (tr *TaxRules) FederalBracketsFor(fs domain.FilingStatus) []TaxBracket {
	if brackets, ok := tr.FederalBrackets[fs]; ok {
		return brackets
	}
	return tr.FederalBrackets[domain.Single]
}

// LTCGBracketsFor returns the preferential-income schedule for a status,
// falling back to Single.
func (tr *TaxRules) LTCGBracketsFor(fs domain.FilingStatus) []TaxBracket {
	if brackets, ok := tr.LTCGBrackets[fs]; ok {
		return brackets
	}
	return tr.LTCGBrackets[domain.Single]
}

// StandardDeduction returns the federal standard deduction for a status,
// falling back to Single.
func (tr *TaxRules) StandardDeduction(fs domain.FilingStatus) decimal.Decimal {
	if d, ok := tr.StandardDeductions[fs]; ok {
		return d
	}
	return tr.StandardDeductions[domain.Single]
}

// StateDeduction returns the NC standard deduction for a status, falling back
// to Single.
func (tr *TaxRules) StateDeduction(fs domain.FilingStatus) decimal.Decimal {
	if d, ok := tr.StateDeductions[fs]; ok {
		return d
	}
	return tr.StateDeductions[domain.Single]
}
