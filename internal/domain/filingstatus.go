package domain

import (
	"fmt"
	"strings"
)

// FilingStatus identifies the federal tax filing status. The set is closed;
// every bracket, deduction, and threshold table is keyed by it.
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
	MarriedFilingSeparately FilingStatus = "married_filing_separately"
	HeadOfHousehold         FilingStatus = "head_of_household"
	QualifyingWidow         FilingStatus = "qualifying_widow"
)

// AllFilingStatuses lists every valid status, in display order.
var AllFilingStatuses = []FilingStatus{
	Single,
	MarriedFilingJointly,
	MarriedFilingSeparately,
	HeadOfHousehold,
	QualifyingWidow,
}

// ParseFilingStatus converts user-facing spellings ("Married Filing Jointly",
// "married_filing_jointly", "MFJ") to a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "(er)", "")

	switch normalized {
	case "single":
		return Single, nil
	case "married_filing_jointly", "mfj":
		return MarriedFilingJointly, nil
	case "married_filing_separately", "mfs":
		return MarriedFilingSeparately, nil
	case "head_of_household", "hoh":
		return HeadOfHousehold, nil
	case "qualifying_widow", "qualifying_widower", "qw":
		return QualifyingWidow, nil
	}
	return "", fmt.Errorf("unknown filing status: %q", s)
}

// Valid reports whether the status is one of the five recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparately, HeadOfHousehold, QualifyingWidow:
		return true
	}
	return false
}

// String returns a human-readable label.
func (fs FilingStatus) String() string {
	switch fs {
	case Single:
		return "Single"
	case MarriedFilingJointly:
		return "Married Filing Jointly"
	case MarriedFilingSeparately:
		return "Married Filing Separately"
	case HeadOfHousehold:
		return "Head of Household"
	case QualifyingWidow:
		return "Qualifying Widow(er)"
	}
	return string(fs)
}

// UnmarshalYAML rejects unknown statuses at the input boundary. Inside the
// calculation tables an unlisted status falls back to Single; an unparseable
// one never gets that far.
func (fs *FilingStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseFilingStatus(raw)
	if err != nil {
		return err
	}
	*fs = parsed
	return nil
}
