package domain

import "github.com/shopspring/decimal"

// TaxResult is the complete tax breakdown for one engine invocation. It is
// built fresh on every call and never mutated afterwards.
type TaxResult struct {
	// Income breakdown
	OrdinaryIncome     decimal.Decimal `json:"ordinary_income"`
	PreferentialIncome decimal.Decimal `json:"preferential_income"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	DeductionUsed      decimal.Decimal `json:"deduction_used"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`

	// Federal tax
	FederalOrdinaryTax     decimal.Decimal `json:"federal_ordinary_tax"`
	FederalPreferentialTax decimal.Decimal `json:"federal_preferential_tax"`
	TotalFederalTax        decimal.Decimal `json:"total_federal_tax"`

	// State tax
	StateTaxableIncome decimal.Decimal `json:"state_taxable_income"`
	StateTax           decimal.Decimal `json:"state_tax"`

	// Totals
	TotalTax       decimal.Decimal `json:"total_tax"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"`

	// Rates, as percentages
	EffectiveTaxRate    decimal.Decimal `json:"effective_tax_rate"`
	FederalMarginalRate decimal.Decimal `json:"federal_marginal_rate"`

	Quarterly *QuarterlyPaymentInfo `json:"quarterly,omitempty"`
}

// QuarterlyPaymentInfo is the estimated-payment determination derived from a
// TaxResult plus the withholding and prior-year inputs.
type QuarterlyPaymentInfo struct {
	Required          bool            `json:"required"`
	EstimatedPayment  decimal.Decimal `json:"estimated_payment"`
	TotalUnderpayment decimal.Decimal `json:"total_underpayment"`
	SafeHarborAmount  decimal.Decimal `json:"safe_harbor_amount"`
	Reason            string          `json:"reason"`
}

// RothConversionSuggestion quantifies the tax impact of converting enough to
// reach the target MAGI. It exists only when target > current; callers see nil
// otherwise, never a zero-valued placeholder.
type RothConversionSuggestion struct {
	HasOpportunity      bool            `json:"has_opportunity"`
	CurrentMAGI         decimal.Decimal `json:"current_magi"`
	TargetMAGI          decimal.Decimal `json:"target_magi"`
	SuggestedConversion decimal.Decimal `json:"suggested_conversion"`
	ConversionTax       decimal.Decimal `json:"conversion_tax"`
	CurrentTotalTax     decimal.Decimal `json:"current_total_tax"`
	NewTotalTax         decimal.Decimal `json:"new_total_tax"`
	MarginalRate        decimal.Decimal `json:"marginal_rate"`

	// Federal/state split for comparison display
	CurrentFederalTax decimal.Decimal `json:"current_federal_tax"`
	NewFederalTax     decimal.Decimal `json:"new_federal_tax"`
	CurrentStateTax   decimal.Decimal `json:"current_state_tax"`
	NewStateTax       decimal.Decimal `json:"new_state_tax"`
}

// InvestmentBreakdown is the per-source view of the brokerage income.
type InvestmentBreakdown struct {
	ShortTermCapitalGains    decimal.Decimal `json:"short_term_capital_gains"`
	ShortTermOptionsGains    decimal.Decimal `json:"short_term_options_gains"`
	ShortTermNonOptionsGains decimal.Decimal `json:"short_term_non_options_gains"`
	LongTermCapitalGains     decimal.Decimal `json:"long_term_capital_gains"`
	TotalCapitalGains        decimal.Decimal `json:"total_capital_gains"`
	DividendIncome           decimal.Decimal `json:"dividend_income"`
	InterestIncome           decimal.Decimal `json:"interest_income"`
	Total                    decimal.Decimal `json:"total"`
}

// AdditionalBreakdown is the per-field view of the user-declared income.
type AdditionalBreakdown struct {
	Wages            decimal.Decimal `json:"wages"`
	BusinessIncome   decimal.Decimal `json:"business_income"`
	RentalIncome     decimal.Decimal `json:"rental_income"`
	RetirementIncome decimal.Decimal `json:"retirement_income"`
	SocialSecurity   decimal.Decimal `json:"social_security"`
	OtherIncome      decimal.Decimal `json:"other_income"`
	Total            decimal.Decimal `json:"total"`
}

// IncomeBreakdown combines both income views for reporting.
type IncomeBreakdown struct {
	Investment        InvestmentBreakdown `json:"investment_income"`
	Additional        AdditionalBreakdown `json:"additional_income"`
	TaxExemptInterest decimal.Decimal     `json:"tax_exempt_interest"`
}

// DeductionsBreakdown is the per-field view of deductions and adjustments.
type DeductionsBreakdown struct {
	StandardDeduction   decimal.Decimal `json:"standard_deduction"`
	ItemizedDeductions  decimal.Decimal `json:"itemized_deductions"`
	StudentLoanInterest decimal.Decimal `json:"student_loan_interest"`
	IRAContributions    decimal.Decimal `json:"ira_contributions"`
	HSAContributions    decimal.Decimal `json:"hsa_contributions"`
	SelfEmploymentTax   decimal.Decimal `json:"self_employment_tax"`
	OtherAdjustments    decimal.Decimal `json:"other_adjustments"`
	TotalAdjustments    decimal.Decimal `json:"total_adjustments"`
}

// IRMAAInfo is the Medicare premium tier the MAGI lands in.
type IRMAAInfo struct {
	Tier string          `json:"tier"`
	MAGI decimal.Decimal `json:"magi"`
}

// MAGIResult is the aggregated output of a full calculation: income totals,
// AGI, MAGI, the embedded tax breakdown, and the optional conversion
// suggestion.
type MAGIResult struct {
	TotalIncome decimal.Decimal `json:"total_income"`
	AGI         decimal.Decimal `json:"agi"`
	MAGI        decimal.Decimal `json:"magi"`

	IncomeBreakdown     IncomeBreakdown     `json:"income_breakdown"`
	DeductionsBreakdown DeductionsBreakdown `json:"deductions_breakdown"`

	FilingStatus FilingStatus `json:"filing_status"`
	TaxYear      int          `json:"tax_year"`

	TaxResult          *TaxResult                `json:"tax_result,omitempty"`
	RothSuggestion     *RothConversionSuggestion `json:"roth_suggestion,omitempty"`
	IRMAA              IRMAAInfo                 `json:"irmaa"`
	ACASubsidyEligible bool                      `json:"aca_subsidy_eligible"`
}
