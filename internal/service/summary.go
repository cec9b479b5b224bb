package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/csv2txf/internal/domain"
)

// Summarize totals the lots of conv sold between begin and end, both inclusive.
// A zero begin or end defaults to the first or last day of the tax year, and
// leaves that side open when the conversion kept every year.
func Summarize(conv domain.Conversion, begin, end time.Time) domain.Summary {
	if begin.IsZero() && conv.TaxYear != 0 {
		begin = time.Date(conv.TaxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() && conv.TaxYear != 0 {
		end = time.Date(conv.TaxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	summary := domain.Summary{
		Broker:          conv.Broker,
		TaxYear:         conv.TaxYear,
		Begin:           begin,
		End:             end,
		TotalCost:       decimal.Zero,
		TotalProceeds:   decimal.Zero,
		TotalAdjustment: decimal.Zero,
		ShortTermNet:    decimal.Zero,
		LongTermNet:     decimal.Zero,
	}

	for _, txn := range conv.Transactions {
		sellDay := truncateDay(txn.SellDate)
		if !begin.IsZero() && sellDay.Before(truncateDay(begin)) {
			continue
		}
		if !end.IsZero() && sellDay.After(truncateDay(end)) {
			continue
		}

		summary.Count++
		summary.TotalCost = summary.TotalCost.Add(txn.CostBasis)
		summary.TotalProceeds = summary.TotalProceeds.Add(txn.SaleProceeds)
		if txn.HasAdjustment() {
			summary.TotalAdjustment = summary.TotalAdjustment.Add(txn.Adjustment.Decimal)
		}

		if txn.Term() == domain.LongTerm {
			summary.LongTermNet = summary.LongTermNet.Add(txn.GainOrLoss())
		} else {
			summary.ShortTermNet = summary.ShortTermNet.Add(txn.GainOrLoss())
		}
	}

	return summary
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
