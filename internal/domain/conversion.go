package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion contains the result of parsing one broker export
type Conversion struct {
	RunID        string
	Broker       string
	TaxYear      int
	Transactions []Transaction
}

// Summary contains the gains and losses of the lots sold within [Begin, End]
type Summary struct {
	Broker          string
	TaxYear         int
	Begin           time.Time
	End             time.Time
	Count           int
	TotalCost       decimal.Decimal
	TotalProceeds   decimal.Decimal
	TotalAdjustment decimal.Decimal
	ShortTermNet    decimal.Decimal
	LongTermNet     decimal.Decimal
}

// NetGainOrLoss returns proceeds plus adjustments minus cost
func (s Summary) NetGainOrLoss() decimal.Decimal {
	return s.TotalProceeds.Add(s.TotalAdjustment).Sub(s.TotalCost)
}
