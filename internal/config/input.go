package config

import (
	"fmt"
	"os"

	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if err := ip.validateInputs(&cfg.Inputs); err != nil {
		return err
	}
	if err := ip.validateInvestment(&cfg.Investment); err != nil {
		return err
	}
	return nil
}

// validateInputs validates the user-supplied figures. Short-term losses are
// legal in the brokerage records, but the declared income fields must be
// non-negative.
func (ip *InputParser) validateInputs(inputs *domain.UserInputs) error {
	if !inputs.FilingStatus.Valid() {
		return fmt.Errorf("filing status is required (one of single, married_filing_jointly, married_filing_separately, head_of_household, qualifying_widow)")
	}
	if inputs.TaxYear != 0 && (inputs.TaxYear < 2000 || inputs.TaxYear > 2100) {
		return fmt.Errorf("tax year %d is out of range", inputs.TaxYear)
	}

	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"wages", inputs.Wages},
		{"business_income", inputs.BusinessIncome},
		{"rental_income", inputs.RentalIncome},
		{"retirement_income", inputs.RetirementIncome},
		{"social_security", inputs.SocialSecurity},
		{"other_income", inputs.OtherIncome},
		{"tax_exempt_interest", inputs.TaxExemptInterest},
		{"itemized_deductions", inputs.ItemizedDeductions},
		{"student_loan_interest", inputs.StudentLoanInterest},
		{"ira_contributions", inputs.IRAContributions},
		{"hsa_contributions", inputs.HSAContributions},
		{"self_employment_tax", inputs.SelfEmploymentTax},
		{"other_adjustments", inputs.OtherAdjustments},
		{"federal_withholding", inputs.FederalWithholding},
	}
	for _, field := range nonNegative {
		if field.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", field.name)
		}
	}

	if inputs.TargetMAGI != nil && inputs.TargetMAGI.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("target_magi must be positive when set")
	}
	if inputs.PriorYearTax != nil && inputs.PriorYearTax.LessThan(decimal.Zero) {
		return fmt.Errorf("prior_year_tax cannot be negative")
	}
	if inputs.HouseholdSize < 0 {
		return fmt.Errorf("household_size cannot be negative")
	}
	if !inputs.StandardDeductionSelected() && inputs.ItemizedDeductions.IsZero() {
		return fmt.Errorf("itemized_deductions is required when use_standard_deduction is false")
	}

	return nil
}

// validateInvestment sanity-checks the brokerage records. Dirty amounts are
// tolerated (they default to zero on the ledger side); only structurally
// impossible records are rejected.
func (ip *InputParser) validateInvestment(investment *domain.InvestmentIncome) error {
	for i := range investment.RealizedGains {
		gain := &investment.RealizedGains[i]
		if gain.Term != "" && gain.Term != domain.TermShort && gain.Term != domain.TermLong {
			return fmt.Errorf("realized gain %d (%s): term must be %q or %q, got %q", i, gain.Symbol, domain.TermShort, domain.TermLong, gain.Term)
		}
	}
	for i := range investment.Transactions {
		txn := &investment.Transactions[i]
		if txn.Action == "" {
			return fmt.Errorf("transaction %d: action is required", i)
		}
	}
	return nil
}

// SaveConfiguration writes a configuration back to a YAML file.
func SaveConfiguration(cfg *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
