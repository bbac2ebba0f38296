package calculation

import (
	"fmt"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

// CalculationEngine composes income sources into total income, AGI, and MAGI,
// runs the tax calculator, and conditionally runs the Roth conversion solver.
// Every call is independent; the engine keeps no per-call state.
type CalculationEngine struct {
	TaxCalc    *TaxCalculator
	RothSolver *RothConversionSolver
	Logger     Logger
}

// NewCalculationEngine creates an engine with 2025 rules and a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	taxCalc := NewTaxCalculator()
	return &CalculationEngine{
		TaxCalc:    taxCalc,
		RothSolver: NewRothConversionSolver(taxCalc),
		Logger:     NopLogger{},
	}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	ce.Logger = logger
}

// Calculate runs the full MAGI and tax analysis for one configuration.
//
// The pipeline: sum investment and additional income into total income,
// subtract the above-the-line adjustments to reach AGI, add back tax-exempt
// interest, student loan interest, and IRA contributions to reach MAGI, then
// run the tax engine and, when a target MAGI is present, the conversion
// solver.
func (ce *CalculationEngine) Calculate(cfg *domain.Configuration) (*domain.MAGIResult, error) {
	if !cfg.Inputs.FilingStatus.Valid() {
		return nil, fmt.Errorf("invalid filing status: %q", string(cfg.Inputs.FilingStatus))
	}

	investment := &cfg.Investment
	additional := cfg.Inputs.AdditionalIncome()
	deductions := ce.resolveDeductions(&cfg.Inputs)

	totalIncome := investment.TotalInvestmentIncome().Add(additional.Total())
	agi := totalIncome.Sub(deductions.TotalAdjustments())
	magi := agi.
		Add(additional.TaxExemptInterest).
		Add(deductions.StudentLoanInterest).
		Add(deductions.IRAContributions)

	ce.Logger.Debugf("aggregated income: total=%s agi=%s magi=%s", totalIncome.StringFixed(2), agi.StringFixed(2), magi.StringFixed(2))

	taxInput := TaxInput{
		ShortTermGains:     investment.ShortTermCapitalGains(),
		LongTermGains:      investment.LongTermCapitalGains(),
		DividendIncome:     investment.DividendIncome(),
		InterestIncome:     investment.InterestIncome(),
		AdditionalIncome:   additional.Total(),
		FilingStatus:       cfg.Inputs.FilingStatus,
		FederalWithholding: cfg.Inputs.FederalWithholding,
		PriorYearTax:       cfg.Inputs.PriorYearTax,
	}
	if !cfg.Inputs.StandardDeductionSelected() {
		itemized := cfg.Inputs.ItemizedDeductions
		taxInput.Deduction = &itemized
	}

	taxResult := ce.TaxCalc.Calculate(taxInput)
	rothSuggestion := ce.RothSolver.AnalyzeOpportunity(magi, cfg.Inputs.TargetMAGI, taxInput, taxResult)
	if rothSuggestion != nil {
		ce.Logger.Infof("roth conversion opportunity: convert %s at %s%% marginal",
			rothSuggestion.SuggestedConversion.StringFixed(2), rothSuggestion.MarginalRate.StringFixed(2))
	}

	return &domain.MAGIResult{
		TotalIncome:         totalIncome,
		AGI:                 agi,
		MAGI:                magi,
		IncomeBreakdown:     buildIncomeBreakdown(investment, &additional),
		DeductionsBreakdown: buildDeductionsBreakdown(&deductions),
		FilingStatus:        cfg.Inputs.FilingStatus,
		TaxYear:             cfg.Inputs.TaxYear,
		TaxResult:           taxResult,
		RothSuggestion:      rothSuggestion,
		IRMAA: domain.IRMAAInfo{
			Tier: ce.TaxCalc.Rules.IRMAATierFor(magi, cfg.Inputs.FilingStatus),
			MAGI: magi,
		},
		ACASubsidyEligible: ce.TaxCalc.Rules.ACASubsidyEligible(magi, cfg.Inputs.HouseholdSize),
	}, nil
}

// resolveDeductions applies the standard-vs-itemized choice; only the chosen
// kind carries an amount.
func (ce *CalculationEngine) resolveDeductions(inputs *domain.UserInputs) domain.Deductions {
	deductions := domain.Deductions{
		StudentLoanInterest: inputs.StudentLoanInterest,
		IRAContributions:    inputs.IRAContributions,
		HSAContributions:    inputs.HSAContributions,
		SelfEmploymentTax:   inputs.SelfEmploymentTax,
		OtherAdjustments:    inputs.OtherAdjustments,
	}
	if inputs.StandardDeductionSelected() {
		deductions.StandardDeduction = ce.TaxCalc.Rules.StandardDeduction(inputs.FilingStatus)
	} else {
		deductions.ItemizedDeductions = inputs.ItemizedDeductions
	}
	return deductions
}

func buildIncomeBreakdown(investment *domain.InvestmentIncome, additional *domain.AdditionalIncome) domain.IncomeBreakdown {
	return domain.IncomeBreakdown{
		Investment: domain.InvestmentBreakdown{
			ShortTermCapitalGains:    investment.ShortTermCapitalGains(),
			ShortTermOptionsGains:    investment.ShortTermOptionsGains(),
			ShortTermNonOptionsGains: investment.ShortTermNonOptionsGains(),
			LongTermCapitalGains:     investment.LongTermCapitalGains(),
			TotalCapitalGains:        investment.TotalCapitalGains(),
			DividendIncome:           investment.DividendIncome(),
			InterestIncome:           investment.InterestIncome(),
			Total:                    investment.TotalInvestmentIncome(),
		},
		Additional: domain.AdditionalBreakdown{
			Wages:            additional.Wages,
			BusinessIncome:   additional.BusinessIncome,
			RentalIncome:     additional.RentalIncome,
			RetirementIncome: additional.RetirementIncome,
			SocialSecurity:   additional.SocialSecurity,
			OtherIncome:      additional.OtherIncome,
			Total:            additional.Total(),
		},
		TaxExemptInterest: additional.TaxExemptInterest,
	}
}

func buildDeductionsBreakdown(deductions *domain.Deductions) domain.DeductionsBreakdown {
	return domain.DeductionsBreakdown{
		StandardDeduction:   deductions.StandardDeduction,
		ItemizedDeductions:  deductions.ItemizedDeductions,
		StudentLoanInterest: deductions.StudentLoanInterest,
		IRAContributions:    deductions.IRAContributions,
		HSAContributions:    deductions.HSAContributions,
		SelfEmploymentTax:   deductions.SelfEmploymentTax,
		OtherAdjustments:    deductions.OtherAdjustments,
		TotalAdjustments:    deductions.TotalAdjustments(),
	}
}
