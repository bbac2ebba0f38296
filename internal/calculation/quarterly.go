package calculation

import (
	"fmt"

	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// QUARTERLY PAYMENT ASSUMPTIONS:
//
// 1. The safe harbor is the smaller of 90% of current-year tax and 100% of
//    prior-year tax (when supplied). The 110%-of-prior-year rule for high
//    earners is intentionally not implemented.
//
// 2. Underpayments below $1,000 never require estimated payments.
//
// 3. The shortfall is spread over four equal installments.

var (
	underpaymentThreshold = decimal.NewFromInt(1000)
	safeHarborCurrentPct  = decimal.NewFromFloat(0.90)
	four                  = decimal.NewFromInt(4)
)

// EvaluateQuarterlyPayments decides whether estimated quarterly payments are
// owed and how much. Filing status is accepted for future per-status
// safe-harbor multipliers but does not vary the result today.
func EvaluateQuarterlyPayments(totalFederalTax, federalWithholding decimal.Decimal, priorYearTax *decimal.Decimal, _ domain.FilingStatus) *domain.QuarterlyPaymentInfo {
	underpayment := totalFederalTax.Sub(federalWithholding)

	if underpayment.LessThan(underpaymentThreshold) {
		return &domain.QuarterlyPaymentInfo{
			Required:          false,
			EstimatedPayment:  decimal.Zero,
			TotalUnderpayment: underpayment,
			SafeHarborAmount:  decimal.Zero,
			Reason:            fmt.Sprintf("Underpayment of $%s is below the $1,000 threshold; no estimated payments required", underpayment.StringFixed(2)),
		}
	}

	currentYearHarbor := totalFederalTax.Mul(safeHarborCurrentPct)
	safeHarbor := currentYearHarbor
	priorYearBinding := false
	if priorYearTax != nil && priorYearTax.LessThan(currentYearHarbor) {
		safeHarbor = *priorYearTax
		priorYearBinding = true
	}

	required := federalWithholding.LessThan(safeHarbor)
	shortfall := decimal.Max(decimal.Zero, safeHarbor.Sub(federalWithholding))
	estimatedPayment := shortfall.Div(four)

	var reason string
	switch {
	case !required && priorYearBinding:
		reason = fmt.Sprintf("Withholding of $%s meets the prior-year safe harbor of $%s", federalWithholding.StringFixed(2), safeHarbor.StringFixed(2))
	case !required:
		reason = fmt.Sprintf("Withholding of $%s meets 90%% of the current-year tax ($%s)", federalWithholding.StringFixed(2), safeHarbor.StringFixed(2))
	case priorYearBinding:
		reason = fmt.Sprintf("Withholding of $%s is below the prior-year safe harbor of $%s", federalWithholding.StringFixed(2), safeHarbor.StringFixed(2))
	default:
		reason = fmt.Sprintf("Withholding of $%s is below 90%% of the current-year tax ($%s)", federalWithholding.StringFixed(2), safeHarbor.StringFixed(2))
	}

	return &domain.QuarterlyPaymentInfo{
		Required:          required,
		EstimatedPayment:  estimatedPayment,
		TotalUnderpayment: underpayment,
		SafeHarborAmount:  safeHarbor,
		Reason:            reason,
	}
}
