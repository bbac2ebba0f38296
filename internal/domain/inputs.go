package domain

import "github.com/shopspring/decimal"

// UserInputs is everything the user supplies beyond the brokerage records.
// TargetMAGI and PriorYearTax are pointers because absence is meaningful:
// zero is a legal prior-year tax, and no target means no conversion analysis.
type UserInputs struct {
	FilingStatus FilingStatus     `yaml:"filing_status" json:"filing_status"`
	TaxYear      int              `yaml:"tax_year" json:"tax_year"`
	TargetMAGI   *decimal.Decimal `yaml:"target_magi,omitempty" json:"target_magi,omitempty"`

	// Additional income
	Wages             decimal.Decimal `yaml:"wages" json:"wages"`
	BusinessIncome    decimal.Decimal `yaml:"business_income" json:"business_income"`
	RentalIncome      decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	RetirementIncome  decimal.Decimal `yaml:"retirement_income" json:"retirement_income"`
	SocialSecurity    decimal.Decimal `yaml:"social_security" json:"social_security"`
	OtherIncome       decimal.Decimal `yaml:"other_income" json:"other_income"`
	TaxExemptInterest decimal.Decimal `yaml:"tax_exempt_interest" json:"tax_exempt_interest"`

	// Deductions and adjustments
	UseStandardDeduction *bool           `yaml:"use_standard_deduction,omitempty" json:"use_standard_deduction,omitempty"`
	ItemizedDeductions   decimal.Decimal `yaml:"itemized_deductions" json:"itemized_deductions"`
	StudentLoanInterest  decimal.Decimal `yaml:"student_loan_interest" json:"student_loan_interest"`
	IRAContributions     decimal.Decimal `yaml:"ira_contributions" json:"ira_contributions"`
	HSAContributions     decimal.Decimal `yaml:"hsa_contributions" json:"hsa_contributions"`
	SelfEmploymentTax    decimal.Decimal `yaml:"self_employment_tax" json:"self_employment_tax"`
	OtherAdjustments     decimal.Decimal `yaml:"other_adjustments" json:"other_adjustments"`

	// Withholding and safe-harbor inputs
	FederalWithholding decimal.Decimal  `yaml:"federal_withholding" json:"federal_withholding"`
	PriorYearTax       *decimal.Decimal `yaml:"prior_year_tax,omitempty" json:"prior_year_tax,omitempty"`

	// Household size for the ACA subsidy check; zero means one.
	HouseholdSize int `yaml:"household_size,omitempty" json:"household_size,omitempty"`
}

// StandardDeductionSelected reports whether the standard deduction applies.
// Unset means standard, matching how nearly all filers file.
func (ui *UserInputs) StandardDeductionSelected() bool {
	return ui.UseStandardDeduction == nil || *ui.UseStandardDeduction
}

// AdditionalIncome bundles the income fields for aggregation.
func (ui *UserInputs) AdditionalIncome() AdditionalIncome {
	return AdditionalIncome{
		Wages:             ui.Wages,
		BusinessIncome:    ui.BusinessIncome,
		RentalIncome:      ui.RentalIncome,
		RetirementIncome:  ui.RetirementIncome,
		SocialSecurity:    ui.SocialSecurity,
		OtherIncome:       ui.OtherIncome,
		TaxExemptInterest: ui.TaxExemptInterest,
	}
}

// Configuration is the top-level input file: user inputs plus the typed
// brokerage records produced by the ledger reader.
type Configuration struct {
	Inputs     UserInputs       `yaml:"inputs" json:"inputs"`
	Investment InvestmentIncome `yaml:"investment" json:"investment"`
}
