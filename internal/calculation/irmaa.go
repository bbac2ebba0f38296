package calculation

import (
	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// IRMAATierFor scans the status's tier table in ascending order and returns
// the first tier whose upper bound covers the MAGI, defaulting to the top
// tier. Statuses without their own table (HoH, QW) use the Single tiers.
func (tr *TaxRules) IRMAATierFor(magi decimal.Decimal, fs domain.FilingStatus) string {
	tiers, ok := tr.IRMAAThresholds[fs]
	if !ok {
		tiers = tr.IRMAAThresholds[domain.Single]
	}

	for _, tier := range tiers {
		if magi.LessThanOrEqual(tier.Threshold) {
			return tier.Label
		}
	}
	return tiers[len(tiers)-1].Label
}

// ACASubsidyEligible is the simplified 400%-FPL premium-tax-credit check: a
// single household compares against a fixed threshold, larger households
// scale the family-of-four figure.
func (tr *TaxRules) ACASubsidyEligible(magi decimal.Decimal, householdSize int) bool {
	if householdSize <= 1 {
		return magi.LessThan(tr.ACASingleThreshold)
	}
	threshold := tr.ACAFamilyOf4Threshold.Mul(decimal.NewFromInt(int64(householdSize))).Div(four)
	return magi.LessThan(threshold)
}
