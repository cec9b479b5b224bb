package broker

import "github.com/tirasundara/csv2txf/internal/domain"

// RobinhoodName identifies the Robinhood layout
const RobinhoodName = "Robinhood 1099 PDF Extracted"

// Columns of the CSV extracted from the Robinhood consolidated 1099 PDF
const (
	robinhoodDescription   = "description"
	robinhoodDateSold      = "sold_date"
	robinhoodQuantity      = "quantity"
	robinhoodProceeds      = "proceeds"
	robinhoodDateAcquired  = "acquired_date"
	robinhoodCost          = "cost"
	robinhoodWashSalesLoss = "wash_sales_loss"
	robinhoodGainOrLoss    = "gain_loss"
)

// NewRobinhoodFormat returns the format of the CSV extracted from a Robinhood 1099 PDF.
// Dates are MM/DD/YY and every lot is a covered security.
func NewRobinhoodFormat() *TabularFormat {
	return NewTabularFormat(Layout{
		Name: RobinhoodName,
		Columns: []string{
			robinhoodDescription,
			robinhoodDateSold,
			robinhoodQuantity,
			robinhoodProceeds,
			robinhoodDateAcquired,
			robinhoodCost,
			robinhoodWashSalesLoss,
			robinhoodGainOrLoss,
		},
		DateFormat:         "1/2/06",
		DescriptionColumn:  robinhoodDescription,
		AcquiredDateColumn: robinhoodDateAcquired,
		SoldDateColumn:     robinhoodDateSold,
		CostColumn:         robinhoodCost,
		ProceedsColumn:     robinhoodProceeds,
		AdjustmentColumn:   robinhoodWashSalesLoss,
		Reporting:          domain.BasisReported,
	})
}
