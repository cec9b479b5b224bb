package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/logger"
	"github.com/tirasundara/csv2txf/pkg/fileutil"
)

// Layout describes a header-keyed CSV export of closed lots
type Layout struct {
	Name string

	// Columns is the exact header of the export, in file order
	Columns []string

	// DateFormat is the Go layout of both date columns
	DateFormat string

	DescriptionColumn  string
	AcquiredDateColumn string
	SoldDateColumn     string
	CostColumn         string
	ProceedsColumn     string
	AdjustmentColumn   string // optional

	Reporting domain.Reporting
}

func (l Layout) requiredColumns() []string {
	columns := []string{
		l.DescriptionColumn,
		l.AcquiredDateColumn,
		l.SoldDateColumn,
		l.CostColumn,
		l.ProceedsColumn,
	}
	if l.AdjustmentColumn != "" {
		columns = append(columns, l.AdjustmentColumn)
	}
	return columns
}

// TabularFormat implements domain.BrokerFormat for a CSV Layout
type TabularFormat struct {
	layout    Layout
	signature string
}

// NewTabularFormat creates a broker format for the given layout
func NewTabularFormat(layout Layout) *TabularFormat {
	return &TabularFormat{
		layout:    layout,
		signature: strings.Join(layout.Columns, ","),
	}
}

func (f *TabularFormat) Name() string {
	return f.layout.Name
}

// IsFileForBroker reports whether the first line of the file starts with the layout header
func (f *TabularFormat) IsFileForBroker(path string) (bool, error) {
	firstLine, err := fileutil.NewCSVReader(path).ReadFirstLine()
	if err != nil {
		return false, fmt.Errorf("reading %s signature: %w", f.layout.Name, err)
	}

	return strings.HasPrefix(firstLine, f.signature), nil
}

// ParseFileToTransactions parses and classifies every row sold in taxYear.
// Rows sold in another year are skipped with a warning.
func (f *TabularFormat) ParseFileToTransactions(ctx context.Context, path string, taxYear int) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)
	reader := fileutil.NewCSVReader(path)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", f.layout.Name, err)
	}

	columns, err := newColumnIndex(header, f.layout.requiredColumns())
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}

	var txns []domain.Transaction
	var rowProcessorFn = func(line int, row []string) error {
		txn, err := f.parseRow(path, line, row, columns)
		if err != nil {
			return err
		}

		if txn.SellDate.Before(txn.BuyDate) {
			log.Warn().
				Str("description", txn.Description).
				Int("line", line).
				Msg("sell date precedes buy date")
		}

		if taxYear != 0 && txn.SellDate.Year() != taxYear {
			log.Warn().
				Str("description", txn.Description).
				Int("line", line).
				Int("tax_year", taxYear).
				Msgf("ignoring transaction %q as the sale is not from %d", txn.Description, taxYear)
			return nil
		}

		txns = append(txns, txn)
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing %s transactions: %w", f.layout.Name, err)
	}

	return txns, nil
}

func (f *TabularFormat) parseRow(path string, line int, row []string, columns columnIndex) (domain.Transaction, error) {
	cell := func(column string) string {
		return columns.cell(row, column)
	}
	fieldErr := func(column string, err error) error {
		return &domain.FieldParseError{Path: path, Line: line, Field: column, Value: cell(column), Err: err}
	}

	txn := domain.Transaction{
		Description: cell(f.layout.DescriptionColumn),
	}

	var err error
	if txn.BuyDate, err = ParseDate(cell(f.layout.AcquiredDateColumn), f.layout.DateFormat); err != nil {
		return domain.Transaction{}, fieldErr(f.layout.AcquiredDateColumn, err)
	}
	if txn.SellDate, err = ParseDate(cell(f.layout.SoldDateColumn), f.layout.DateFormat); err != nil {
		return domain.Transaction{}, fieldErr(f.layout.SoldDateColumn, err)
	}
	if txn.CostBasis, err = ParseCurrency(cell(f.layout.CostColumn)); err != nil {
		return domain.Transaction{}, fieldErr(f.layout.CostColumn, err)
	}
	if txn.SaleProceeds, err = ParseCurrency(cell(f.layout.ProceedsColumn)); err != nil {
		return domain.Transaction{}, fieldErr(f.layout.ProceedsColumn, err)
	}

	// an empty adjustment cell means no adjustment
	if f.layout.AdjustmentColumn != "" && strings.TrimSpace(cell(f.layout.AdjustmentColumn)) != "" {
		var adjustment decimal.Decimal
		if adjustment, err = ParseCurrency(cell(f.layout.AdjustmentColumn)); err != nil {
			return domain.Transaction{}, fieldErr(f.layout.AdjustmentColumn, err)
		}
		txn.Adjustment = decimal.NewNullDecimal(adjustment)
	}

	term := domain.Classify(txn.BuyDate, txn.SellDate)
	txn.EntryCode = domain.EntryCodeFor(term, f.layout.Reporting)

	return txn, nil
}
