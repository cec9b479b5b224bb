package broker

import "github.com/tirasundara/csv2txf/internal/domain"

// Form8949Name identifies the generic Form 8949 layout
const Form8949Name = "Form 8949 CSV"

// NewForm8949Format returns a broker-neutral layout that mirrors the Form 8949
// columns, for lots kept by hand. Dates are ISO 8601.
func NewForm8949Format() *TabularFormat {
	return NewTabularFormat(Layout{
		Name: Form8949Name,
		Columns: []string{
			"description",
			"date_acquired",
			"date_sold",
			"proceeds",
			"cost_basis",
			"adjustment",
		},
		DateFormat:         "2006-01-02",
		DescriptionColumn:  "description",
		AcquiredDateColumn: "date_acquired",
		SoldDateColumn:     "date_sold",
		CostColumn:         "cost_basis",
		ProceedsColumn:     "proceeds",
		AdjustmentColumn:   "adjustment",
		Reporting:          domain.BasisReported,
	})
}
