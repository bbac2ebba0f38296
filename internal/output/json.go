package output

import (
	"encoding/json"
	"fmt"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

// JSONFormatter emits the result as JSON. Decimals become plain numbers here;
// exact arithmetic ends at this boundary.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.MAGIResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result cannot be nil")
	}

	payload := map[string]any{
		"total_income":  result.TotalIncome.InexactFloat64(),
		"agi":           result.AGI.InexactFloat64(),
		"magi":          result.MAGI.InexactFloat64(),
		"filing_status": result.FilingStatus.String(),
		"tax_year":      result.TaxYear,
		"income_breakdown": map[string]any{
			"investment_income": map[string]float64{
				"short_term_capital_gains":     result.IncomeBreakdown.Investment.ShortTermCapitalGains.InexactFloat64(),
				"short_term_options_gains":     result.IncomeBreakdown.Investment.ShortTermOptionsGains.InexactFloat64(),
				"short_term_non_options_gains": result.IncomeBreakdown.Investment.ShortTermNonOptionsGains.InexactFloat64(),
				"long_term_capital_gains":      result.IncomeBreakdown.Investment.LongTermCapitalGains.InexactFloat64(),
				"total_capital_gains":          result.IncomeBreakdown.Investment.TotalCapitalGains.InexactFloat64(),
				"dividend_income":              result.IncomeBreakdown.Investment.DividendIncome.InexactFloat64(),
				"interest_income":              result.IncomeBreakdown.Investment.InterestIncome.InexactFloat64(),
				"total":                        result.IncomeBreakdown.Investment.Total.InexactFloat64(),
			},
			"additional_income": map[string]float64{
				"wages":             result.IncomeBreakdown.Additional.Wages.InexactFloat64(),
				"business_income":   result.IncomeBreakdown.Additional.BusinessIncome.InexactFloat64(),
				"rental_income":     result.IncomeBreakdown.Additional.RentalIncome.InexactFloat64(),
				"retirement_income": result.IncomeBreakdown.Additional.RetirementIncome.InexactFloat64(),
				"social_security":   result.IncomeBreakdown.Additional.SocialSecurity.InexactFloat64(),
				"other_income":      result.IncomeBreakdown.Additional.OtherIncome.InexactFloat64(),
				"total":             result.IncomeBreakdown.Additional.Total.InexactFloat64(),
			},
			"tax_exempt_interest": result.IncomeBreakdown.TaxExemptInterest.InexactFloat64(),
		},
		"deductions_breakdown": map[string]float64{
			"standard_deduction":    result.DeductionsBreakdown.StandardDeduction.InexactFloat64(),
			"itemized_deductions":   result.DeductionsBreakdown.ItemizedDeductions.InexactFloat64(),
			"student_loan_interest": result.DeductionsBreakdown.StudentLoanInterest.InexactFloat64(),
			"ira_contributions":     result.DeductionsBreakdown.IRAContributions.InexactFloat64(),
			"hsa_contributions":     result.DeductionsBreakdown.HSAContributions.InexactFloat64(),
			"self_employment_tax":   result.DeductionsBreakdown.SelfEmploymentTax.InexactFloat64(),
			"other_adjustments":     result.DeductionsBreakdown.OtherAdjustments.InexactFloat64(),
			"total_adjustments":     result.DeductionsBreakdown.TotalAdjustments.InexactFloat64(),
		},
		"irmaa": map[string]any{
			"tier": result.IRMAA.Tier,
			"magi": result.IRMAA.MAGI.InexactFloat64(),
		},
		"aca_subsidy_eligible": result.ACASubsidyEligible,
	}

	if tax := result.TaxResult; tax != nil {
		taxPayload := map[string]any{
			"ordinary_income":          tax.OrdinaryIncome.InexactFloat64(),
			"preferential_income":      tax.PreferentialIncome.InexactFloat64(),
			"total_income":             tax.TotalIncome.InexactFloat64(),
			"deduction_used":           tax.DeductionUsed.InexactFloat64(),
			"taxable_income":           tax.TaxableIncome.InexactFloat64(),
			"federal_ordinary_tax":     tax.FederalOrdinaryTax.InexactFloat64(),
			"federal_preferential_tax": tax.FederalPreferentialTax.InexactFloat64(),
			"total_federal_tax":        tax.TotalFederalTax.InexactFloat64(),
			"state_taxable_income":     tax.StateTaxableIncome.InexactFloat64(),
			"state_tax":                tax.StateTax.InexactFloat64(),
			"total_tax":                tax.TotalTax.InexactFloat64(),
			"after_tax_income":         tax.AfterTaxIncome.InexactFloat64(),
			"effective_tax_rate":       tax.EffectiveTaxRate.InexactFloat64(),
			"federal_marginal_rate":    tax.FederalMarginalRate.InexactFloat64(),
		}
		if q := tax.Quarterly; q != nil {
			taxPayload["quarterly"] = map[string]any{
				"required":           q.Required,
				"estimated_payment":  q.EstimatedPayment.InexactFloat64(),
				"total_underpayment": q.TotalUnderpayment.InexactFloat64(),
				"safe_harbor_amount": q.SafeHarborAmount.InexactFloat64(),
				"reason":             q.Reason,
			}
		}
		payload["tax_result"] = taxPayload
	}

	if roth := result.RothSuggestion; roth != nil {
		payload["roth_suggestion"] = map[string]any{
			"has_opportunity":      roth.HasOpportunity,
			"current_magi":         roth.CurrentMAGI.InexactFloat64(),
			"target_magi":          roth.TargetMAGI.InexactFloat64(),
			"suggested_conversion": roth.SuggestedConversion.InexactFloat64(),
			"conversion_tax":       roth.ConversionTax.InexactFloat64(),
			"current_total_tax":    roth.CurrentTotalTax.InexactFloat64(),
			"new_total_tax":        roth.NewTotalTax.InexactFloat64(),
			"marginal_rate":        roth.MarginalRate.InexactFloat64(),
			"current_federal_tax":  roth.CurrentFederalTax.InexactFloat64(),
			"new_federal_tax":      roth.NewFederalTax.InexactFloat64(),
			"current_state_tax":    roth.CurrentStateTax.InexactFloat64(),
			"new_state_tax":        roth.NewStateTax.InexactFloat64(),
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
