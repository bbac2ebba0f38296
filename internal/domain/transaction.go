package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Term labels used by the brokerage export.
const (
	TermShort = "Short Term"
	TermLong  = "Long Term"
)

// Transaction actions that count as investment income.
const (
	ActionCashDividend   = "Cash Dividend"
	ActionBondInterest   = "Bond Interest"
	ActionCreditInterest = "Credit Interest"
)

// RealizedGain is a closed position from the brokerage gain/loss export.
// Records arrive already typed from the ledger reader; the calculator only
// ever consumes their aggregate sums.
type RealizedGain struct {
	Symbol            string           `yaml:"symbol" json:"symbol"`
	Name              string           `yaml:"name,omitempty" json:"name,omitempty"`
	ClosedDate        *time.Time       `yaml:"closed_date,omitempty" json:"closed_date,omitempty"`
	OpenedDate        *time.Time       `yaml:"opened_date,omitempty" json:"opened_date,omitempty"`
	Quantity          int64            `yaml:"quantity" json:"quantity"`
	Proceeds          decimal.Decimal  `yaml:"proceeds" json:"proceeds"`
	CostBasis         decimal.Decimal  `yaml:"cost_basis" json:"cost_basis"`
	GainLoss          decimal.Decimal  `yaml:"gain_loss" json:"gain_loss"`
	ShortTermGainLoss *decimal.Decimal `yaml:"short_term_gain_loss,omitempty" json:"short_term_gain_loss,omitempty"`
	LongTermGainLoss  *decimal.Decimal `yaml:"long_term_gain_loss,omitempty" json:"long_term_gain_loss,omitempty"`
	Term              string           `yaml:"term" json:"term"`
	WashSale          bool             `yaml:"wash_sale,omitempty" json:"wash_sale,omitempty"`
}

// IsShortTerm reports whether the position closed within the short-term window.
func (g *RealizedGain) IsShortTerm() bool { return g.Term == TermShort }

// IsLongTerm reports whether the position qualifies for long-term treatment.
func (g *RealizedGain) IsLongTerm() bool { return g.Term == TermLong }

// IsOption detects option positions by symbol shape: brokerage option symbols
// embed the expiry and strike, e.g. "SPY 06/20/2025 450.00 C".
func (g *RealizedGain) IsOption() bool {
	return strings.Contains(strings.TrimSpace(g.Symbol), " ")
}

// HoldingPeriodDays returns the holding period, or 0 when either date is absent.
func (g *RealizedGain) HoldingPeriodDays() int {
	if g.ClosedDate == nil || g.OpenedDate == nil {
		return 0
	}
	return int(g.ClosedDate.Sub(*g.OpenedDate).Hours() / 24)
}

// ShortTermAmount returns the short-term gain/loss contribution of this record.
// The dedicated column wins when present; otherwise the total gain/loss is
// used for short-term rows. Missing amounts degrade to zero.
func (g *RealizedGain) ShortTermAmount() decimal.Decimal {
	if !g.IsShortTerm() {
		return decimal.Zero
	}
	if g.ShortTermGainLoss != nil {
		return *g.ShortTermGainLoss
	}
	return g.GainLoss
}

// LongTermAmount returns the long-term gain/loss contribution of this record.
func (g *RealizedGain) LongTermAmount() decimal.Decimal {
	if !g.IsLongTerm() {
		return decimal.Zero
	}
	if g.LongTermGainLoss != nil {
		return *g.LongTermGainLoss
	}
	return g.GainLoss
}

// Transaction is a row from the brokerage transaction history. Only dividend
// and interest actions feed the income aggregation; everything else is carried
// for reporting.
type Transaction struct {
	Date        *time.Time      `yaml:"date,omitempty" json:"date,omitempty"`
	Action      string          `yaml:"action" json:"action"`
	Symbol      string          `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	FeesComm    decimal.Decimal `yaml:"fees_comm,omitempty" json:"fees_comm,omitempty"`
}

// IsDividend reports whether this transaction is a cash dividend.
func (t *Transaction) IsDividend() bool { return t.Action == ActionCashDividend }

// IsInterest reports whether this transaction is bond or credit interest.
func (t *Transaction) IsInterest() bool {
	return t.Action == ActionBondInterest || t.Action == ActionCreditInterest
}

// IsIncome reports whether the transaction contributes to investment income.
func (t *Transaction) IsIncome() bool { return t.IsDividend() || t.IsInterest() }
