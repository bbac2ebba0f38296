package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rmoore2112/magi-calculator/internal/domain"
)

// CSVFormatter emits one metric per row for spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.MAGIResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result cannot be nil")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, err
	}

	rows := [][]string{
		{"FilingStatus", result.FilingStatus.String()},
		{"TaxYear", strconv.Itoa(result.TaxYear)},
		{"TotalIncome", result.TotalIncome.StringFixed(2)},
		{"AGI", result.AGI.StringFixed(2)},
		{"MAGI", result.MAGI.StringFixed(2)},
		{"IRMAATier", result.IRMAA.Tier},
		{"ACASubsidyEligible", strconv.FormatBool(result.ACASubsidyEligible)},
	}

	if tax := result.TaxResult; tax != nil {
		rows = append(rows,
			[]string{"OrdinaryIncome", tax.OrdinaryIncome.StringFixed(2)},
			[]string{"PreferentialIncome", tax.PreferentialIncome.StringFixed(2)},
			[]string{"DeductionUsed", tax.DeductionUsed.StringFixed(2)},
			[]string{"TaxableIncome", tax.TaxableIncome.StringFixed(2)},
			[]string{"FederalOrdinaryTax", tax.FederalOrdinaryTax.StringFixed(2)},
			[]string{"FederalPreferentialTax", tax.FederalPreferentialTax.StringFixed(2)},
			[]string{"TotalFederalTax", tax.TotalFederalTax.StringFixed(2)},
			[]string{"StateTaxableIncome", tax.StateTaxableIncome.StringFixed(2)},
			[]string{"StateTax", tax.StateTax.StringFixed(2)},
			[]string{"TotalTax", tax.TotalTax.StringFixed(2)},
			[]string{"AfterTaxIncome", tax.AfterTaxIncome.StringFixed(2)},
			[]string{"EffectiveTaxRate", tax.EffectiveTaxRate.StringFixed(2)},
			[]string{"FederalMarginalRate", tax.FederalMarginalRate.StringFixed(2)},
		)
		if q := tax.Quarterly; q != nil {
			rows = append(rows,
				[]string{"QuarterlyRequired", strconv.FormatBool(q.Required)},
				[]string{"QuarterlyPayment", q.EstimatedPayment.StringFixed(2)},
				[]string{"TotalUnderpayment", q.TotalUnderpayment.StringFixed(2)},
				[]string{"SafeHarborAmount", q.SafeHarborAmount.StringFixed(2)},
			)
		}
	}

	if roth := result.RothSuggestion; roth != nil {
		rows = append(rows,
			[]string{"SuggestedConversion", roth.SuggestedConversion.StringFixed(2)},
			[]string{"ConversionTax", roth.ConversionTax.StringFixed(2)},
			[]string{"ConversionMarginalRate", roth.MarginalRate.StringFixed(2)},
		)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
