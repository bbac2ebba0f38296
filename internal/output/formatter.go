package output

import (
	"fmt"
	"strings"

	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a calculation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.MAGIResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for
// unknown names.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// WriteReport formats the result and prints it to stdout.
func WriteReport(result *domain.MAGIResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
