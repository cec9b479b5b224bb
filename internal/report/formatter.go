package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/service"
	"github.com/tirasundara/csv2txf/internal/txf"
)

// OutputFormatter defines the interface for formatting conversion results
type OutputFormatter interface {
	Format(conv domain.Conversion) ([]byte, error)
	FileExtension() string
}

// TXFFormatter formats conversion results as TXF records
type TXFFormatter struct {
	ExportDate time.Time // zero means today
}

func NewTXFFormatter(exportDate time.Time) *TXFFormatter {
	return &TXFFormatter{
		ExportDate: exportDate,
	}
}

// Format implements the OutputFormatter interface for TXF
func (f *TXFFormatter) Format(conv domain.Conversion) ([]byte, error) {
	return []byte(strings.Join(txf.Render(conv.Transactions, f.ExportDate), "\n")), nil
}

func (f *TXFFormatter) FileExtension() string {
	return "txf"
}

// SummaryFormatter formats the gains and losses summary as plain text
type SummaryFormatter struct {
	Begin time.Time
	End   time.Time
}

func NewSummaryFormatter(begin, end time.Time) *SummaryFormatter {
	return &SummaryFormatter{
		Begin: begin,
		End:   end,
	}
}

// Format implements the OutputFormatter interface for the summary report
func (f *SummaryFormatter) Format(conv domain.Conversion) ([]byte, error) {
	summary := service.Summarize(conv, f.Begin, f.End)
	return []byte(strings.Join(SummaryLines(summary), "\n")), nil
}

func (f *SummaryFormatter) FileExtension() string {
	return "txt"
}

// SummaryLines renders a summary as the fixed six line report
func SummaryLines(s domain.Summary) []string {
	return []string{
		fmt.Sprintf("%s summary report for %s", s.Broker, reportYear(s.TaxYear)),
		fmt.Sprintf("Num sale txns:  %d", s.Count),
		"Total cost:     " + txf.FormatMoney(s.TotalCost),
		"Total proceeds: " + txf.FormatMoney(s.TotalProceeds),
		"Total adjustment: " + txf.FormatMoney(s.TotalAdjustment),
		"Net gain/loss:  " + txf.FormatMoney(s.NetGainOrLoss()),
	}
}

func reportYear(taxYear int) string {
	if taxYear == 0 {
		return "all years"
	}
	return strconv.Itoa(taxYear)
}

// JSONFormatter formats conversion results as JSON, for auditing a conversion
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

type jsonTransaction struct {
	Description  string  `json:"description"`
	BuyDate      string  `json:"buy_date"`
	SellDate     string  `json:"sell_date"`
	CostBasis    string  `json:"cost_basis"`
	SaleProceeds string  `json:"sale_proceeds"`
	Adjustment   *string `json:"adjustment"`
	EntryCode    int     `json:"entry_code"`
	Term         string  `json:"term"`
}

type jsonSummary struct {
	Count           int    `json:"count"`
	TotalCost       string `json:"total_cost"`
	TotalProceeds   string `json:"total_proceeds"`
	TotalAdjustment string `json:"total_adjustment"`
	NetGainOrLoss   string `json:"net_gain_or_loss"`
	ShortTermNet    string `json:"short_term_net"`
	LongTermNet     string `json:"long_term_net"`
}

type jsonConversion struct {
	RunID        string            `json:"run_id"`
	Broker       string            `json:"broker"`
	TaxYear      int               `json:"tax_year"`
	Transactions []jsonTransaction `json:"transactions"`
	Summary      jsonSummary       `json:"summary"`
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(conv domain.Conversion) ([]byte, error) {
	summary := service.Summarize(conv, time.Time{}, time.Time{})
	doc := jsonConversion{
		RunID:        conv.RunID,
		Broker:       conv.Broker,
		TaxYear:      conv.TaxYear,
		Transactions: make([]jsonTransaction, 0, len(conv.Transactions)),
		Summary: jsonSummary{
			Count:           summary.Count,
			TotalCost:       summary.TotalCost.StringFixed(2),
			TotalProceeds:   summary.TotalProceeds.StringFixed(2),
			TotalAdjustment: summary.TotalAdjustment.StringFixed(2),
			NetGainOrLoss:   summary.NetGainOrLoss().StringFixed(2),
			ShortTermNet:    summary.ShortTermNet.StringFixed(2),
			LongTermNet:     summary.LongTermNet.StringFixed(2),
		},
	}

	for _, txn := range conv.Transactions {
		jt := jsonTransaction{
			Description:  txn.Description,
			BuyDate:      txn.BuyDate.Format("2006-01-02"),
			SellDate:     txn.SellDate.Format("2006-01-02"),
			CostBasis:    txn.CostBasis.String(),
			SaleProceeds: txn.SaleProceeds.String(),
			EntryCode:    int(txn.EntryCode),
			Term:         txn.Term().String(),
		}
		if txn.HasAdjustment() {
			adjustment := txn.Adjustment.Decimal.String()
			jt.Adjustment = &adjustment
		}
		doc.Transactions = append(doc.Transactions, jt)
	}

	if f.PrettyPrint {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
