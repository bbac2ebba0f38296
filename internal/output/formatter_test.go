package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoore2112/magi-calculator/internal/calculation"
	"github.com/rmoore2112/magi-calculator/internal/domain"
)

func sampleResult(t *testing.T) *domain.MAGIResult {
	t.Helper()
	engine := calculation.NewCalculationEngine()
	target := decimal.NewFromInt(120000)
	result, err := engine.Calculate(&domain.Configuration{
		Inputs: domain.UserInputs{
			FilingStatus:       domain.Single,
			TaxYear:            2025,
			Wages:              decimal.NewFromInt(85000),
			FederalWithholding: decimal.NewFromInt(5000),
			TargetMAGI:         &target,
		},
	})
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"", "console"},
		{"CONSOLE", "console"},
		{"json", "json"},
		{"csv", "csv"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "Formatter %q should exist", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("html"), "Unknown format should return nil")
}

func TestConsoleFormat(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult(t))

	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "MAGI")
	assert.Contains(t, text, "Single")
	assert.Contains(t, text, "$85000.00")
	assert.Contains(t, text, "ROTH CONVERSION", "Target MAGI should surface the conversion section")
}

func TestConsoleFormatNilResult(t *testing.T) {
	_, err := ConsoleFormatter{}.Format(nil)
	assert.Error(t, err)
}

func TestJSONFormat(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult(t))

	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded), "Output should be valid JSON")
	assert.Contains(t, decoded, "magi")
	assert.Contains(t, decoded, "tax_result")
	assert.Equal(t, float64(85000), decoded["total_income"])
}

func TestCSVFormat(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult(t))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Metric,Value", lines[0], "First row should be the header")

	text := string(data)
	assert.Contains(t, text, "MAGI,85000.00")
	assert.Contains(t, text, "TotalFederalTax")
	assert.Contains(t, text, "SuggestedConversion")
}

func TestCSVFormatNilResult(t *testing.T) {
	_, err := CSVFormatter{}.Format(nil)
	assert.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.345)))
}
