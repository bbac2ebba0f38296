package domain

import "github.com/shopspring/decimal"

// InvestmentIncome aggregates the typed brokerage records. All derived sums
// are computed on demand; records are never mutated.
type InvestmentIncome struct {
	RealizedGains []RealizedGain `yaml:"realized_gains,omitempty" json:"realized_gains,omitempty"`
	Transactions  []Transaction  `yaml:"transactions,omitempty" json:"transactions,omitempty"`
}

// ShortTermCapitalGains sums short-term gain/loss across all records. Losses
// are negative and reduce the total.
func (ii *InvestmentIncome) ShortTermCapitalGains() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.RealizedGains {
		total = total.Add(ii.RealizedGains[i].ShortTermAmount())
	}
	return total
}

// ShortTermOptionsGains sums short-term gain/loss from option positions only.
func (ii *InvestmentIncome) ShortTermOptionsGains() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.RealizedGains {
		if ii.RealizedGains[i].IsOption() {
			total = total.Add(ii.RealizedGains[i].ShortTermAmount())
		}
	}
	return total
}

// ShortTermNonOptionsGains sums short-term gain/loss from non-option trades.
func (ii *InvestmentIncome) ShortTermNonOptionsGains() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.RealizedGains {
		if !ii.RealizedGains[i].IsOption() {
			total = total.Add(ii.RealizedGains[i].ShortTermAmount())
		}
	}
	return total
}

// LongTermCapitalGains sums long-term gain/loss across all records.
func (ii *InvestmentIncome) LongTermCapitalGains() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.RealizedGains {
		total = total.Add(ii.RealizedGains[i].LongTermAmount())
	}
	return total
}

// TotalCapitalGains is short-term plus long-term gains.
func (ii *InvestmentIncome) TotalCapitalGains() decimal.Decimal {
	return ii.ShortTermCapitalGains().Add(ii.LongTermCapitalGains())
}

// DividendIncome sums cash dividend transactions.
func (ii *InvestmentIncome) DividendIncome() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.Transactions {
		if ii.Transactions[i].IsDividend() {
			total = total.Add(ii.Transactions[i].Amount)
		}
	}
	return total
}

// InterestIncome sums bond and credit interest transactions.
func (ii *InvestmentIncome) InterestIncome() decimal.Decimal {
	total := decimal.Zero
	for i := range ii.Transactions {
		if ii.Transactions[i].IsInterest() {
			total = total.Add(ii.Transactions[i].Amount)
		}
	}
	return total
}

// TotalInvestmentIncome is capital gains plus dividends plus interest.
func (ii *InvestmentIncome) TotalInvestmentIncome() decimal.Decimal {
	return ii.TotalCapitalGains().Add(ii.DividendIncome()).Add(ii.InterestIncome())
}

// AdditionalIncome holds the user-declared income beyond the brokerage data.
// Tax-exempt interest is excluded from Total; it only matters as a MAGI
// add-back.
type AdditionalIncome struct {
	Wages             decimal.Decimal `yaml:"wages" json:"wages"`
	BusinessIncome    decimal.Decimal `yaml:"business_income" json:"business_income"`
	RentalIncome      decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	RetirementIncome  decimal.Decimal `yaml:"retirement_income" json:"retirement_income"`
	SocialSecurity    decimal.Decimal `yaml:"social_security" json:"social_security"`
	OtherIncome       decimal.Decimal `yaml:"other_income" json:"other_income"`
	TaxExemptInterest decimal.Decimal `yaml:"tax_exempt_interest" json:"tax_exempt_interest"`
}

// Total sums the taxable additional income sources.
func (ai *AdditionalIncome) Total() decimal.Decimal {
	return ai.Wages.
		Add(ai.BusinessIncome).
		Add(ai.RentalIncome).
		Add(ai.RetirementIncome).
		Add(ai.SocialSecurity).
		Add(ai.OtherIncome)
}

// Deductions holds the resolved deduction plus the above-the-line adjustments.
type Deductions struct {
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	ItemizedDeductions  decimal.Decimal `yaml:"itemized_deductions" json:"itemized_deductions"`
	StudentLoanInterest decimal.Decimal `yaml:"student_loan_interest" json:"student_loan_interest"`
	IRAContributions    decimal.Decimal `yaml:"ira_contributions" json:"ira_contributions"`
	HSAContributions    decimal.Decimal `yaml:"hsa_contributions" json:"hsa_contributions"`
	SelfEmploymentTax   decimal.Decimal `yaml:"self_employment_tax" json:"self_employment_tax"`
	OtherAdjustments    decimal.Decimal `yaml:"other_adjustments" json:"other_adjustments"`
}

// TotalDeductions is the larger of standard and itemized.
func (d *Deductions) TotalDeductions() decimal.Decimal {
	return decimal.Max(d.StandardDeduction, d.ItemizedDeductions)
}

// TotalAdjustments sums the above-the-line adjustments applied to reach AGI.
func (d *Deductions) TotalAdjustments() decimal.Decimal {
	return d.StudentLoanInterest.
		Add(d.IRAContributions).
		Add(d.HSAContributions).
		Add(d.SelfEmploymentTax).
		Add(d.OtherAdjustments)
}
