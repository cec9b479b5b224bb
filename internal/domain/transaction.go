package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one closed capital-gains lot read from a broker export
type Transaction struct {
	Description  string
	BuyDate      time.Time
	SellDate     time.Time
	CostBasis    decimal.Decimal
	SaleProceeds decimal.Decimal
	Adjustment   decimal.NullDecimal // Valid == false when the broker reported no adjustment
	EntryCode    EntryCode
}

// HasAdjustment reports whether the broker supplied an adjustment amount, zero included
func (t Transaction) HasAdjustment() bool {
	return t.Adjustment.Valid
}

// GainOrLoss returns proceeds plus adjustment minus cost basis
func (t Transaction) GainOrLoss() decimal.Decimal {
	gain := t.SaleProceeds.Sub(t.CostBasis)
	if t.Adjustment.Valid {
		gain = gain.Add(t.Adjustment.Decimal)
	}
	return gain
}

// Term returns the holding period classification carried by the entry code
func (t Transaction) Term() Term {
	return t.EntryCode.Term()
}
