// Package txf renders capital-gains lots in the Tax Exchange Format (TXF) V042.
package txf

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/csv2txf/internal/domain"
)

const (
	Version    = "V042"
	ProgramID  = "csv2txf"
	DateLayout = "01/02/2006"

	recordEnd = "^"
)

// Render returns the TXF lines for records, in order. A zero exportDate means today.
func Render(records []domain.Transaction, exportDate time.Time) []string {
	if exportDate.IsZero() {
		exportDate = time.Now()
	}

	lines := make([]string, 0, 4+12*len(records))
	lines = append(lines,
		Version,
		"A"+ProgramID,
		"D"+FormatDate(exportDate),
		recordEnd,
	)

	for _, txn := range records {
		lines = append(lines,
			"TD",
			fmt.Sprintf("N%d", txn.EntryCode),
			"C1",
			"L1",
			"P"+txn.Description,
			"D"+FormatDate(txn.BuyDate),
			"D"+FormatDate(txn.SellDate),
			FormatMoney(txn.CostBasis),
			FormatMoney(txn.SaleProceeds),
			formatOptionalMoney(txn.Adjustment),
			recordEnd,
		)
	}

	return lines
}

// FormatDate formats a TXF date (MM/DD/YYYY)
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// FormatMoney formats a TXF amount: the $ sigil then two fraction digits, no grouping
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func formatOptionalMoney(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "$"
	}
	return FormatMoney(amount.Decimal)
}
