package broker_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/csv2txf/internal/broker"
	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/logger"
)

const robinhoodHeader = "description,sold_date,quantity,proceeds,acquired_date,cost,wash_sales_loss,gain_loss"

func createTempCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func captureLog(buf *bytes.Buffer) context.Context {
	return logger.WithContext(context.Background(), logger.NewWithWriter(buf))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRobinhoodFormat_ParseFileToTransactions(t *testing.T) {
	var logs bytes.Buffer
	format := broker.NewRobinhoodFormat()

	txns, err := format.ParseFileToTransactions(captureLog(&logs), "testdata/robinhood_2023.csv", 2023)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	aapl := txns[0]
	assert.Equal(t, "APPLE INC. COMMON STOCK / CUSIP: 037833100 / Symbol: AAPL", aapl.Description)
	assert.Equal(t, date(2022, time.January, 10), aapl.BuyDate)
	assert.Equal(t, date(2023, time.March, 15), aapl.SellDate)
	assert.True(t, decimal.RequireFromString("1720.00").Equal(aapl.CostBasis))
	assert.True(t, decimal.RequireFromString("1650.20").Equal(aapl.SaleProceeds))
	assert.False(t, aapl.HasAdjustment())
	assert.Equal(t, domain.LongTermCovered, aapl.EntryCode)

	tsla := txns[1]
	assert.True(t, tsla.HasAdjustment())
	assert.True(t, decimal.RequireFromString("300.50").Equal(tsla.Adjustment.Decimal))
	assert.Equal(t, domain.ShortTermCovered, tsla.EntryCode, "held exactly one year")

	msft := txns[2]
	assert.Equal(t, date(2023, time.November, 2), msft.BuyDate)
	assert.True(t, msft.HasAdjustment(), "a zero adjustment is still reported")
	assert.True(t, msft.Adjustment.Decimal.IsZero())
	assert.Equal(t, domain.ShortTermCovered, msft.EntryCode)

	assert.Equal(t, 1, strings.Count(logs.String(), "ignoring transaction"))
	assert.Contains(t, logs.String(), "GAMESTOP")
}

func TestRobinhoodFormat_AllYears(t *testing.T) {
	var logs bytes.Buffer

	txns, err := broker.NewRobinhoodFormat().ParseFileToTransactions(captureLog(&logs), "testdata/robinhood_2023.csv", 0)
	require.NoError(t, err)

	assert.Len(t, txns, 4)
	assert.NotContains(t, logs.String(), "ignoring transaction")
}

func TestRobinhoodFormat_OneWarningPerExcludedRow(t *testing.T) {
	var logs bytes.Buffer
	path := createTempCSV(t,
		robinhoodHeader,
		"A,01/05/22,1,$10.00,01/01/21,$5.00,,$5.00",
		"B,02/05/22,1,$10.00,01/01/21,$5.00,,$5.00",
		"C,02/05/23,1,$10.00,01/01/21,$5.00,,$5.00",
	)

	txns, err := broker.NewRobinhoodFormat().ParseFileToTransactions(captureLog(&logs), path, 2023)
	require.NoError(t, err)

	require.Len(t, txns, 1)
	assert.Equal(t, "C", txns[0].Description)
	assert.Equal(t, 2, strings.Count(logs.String(), "ignoring transaction"))
}

func TestRobinhoodFormat_SellBeforeBuyIsWarned(t *testing.T) {
	var logs bytes.Buffer
	path := createTempCSV(t,
		robinhoodHeader,
		"A,01/05/23,1,$10.00,03/01/23,$5.00,,$5.00",
	)

	txns, err := broker.NewRobinhoodFormat().ParseFileToTransactions(captureLog(&logs), path, 2023)
	require.NoError(t, err)

	assert.Len(t, txns, 1)
	assert.Contains(t, logs.String(), "sell date precedes buy date")
}

func TestRobinhoodFormat_FieldParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		field string
		value string
	}{
		{name: "bad cost", row: "A,01/05/23,1,$10.00,01/01/21,N/A,,$5.00", field: "cost", value: "N/A"},
		{name: "empty proceeds", row: "A,01/05/23,1,,01/01/21,$5.00,,$5.00", field: "proceeds", value: ""},
		{name: "bad wash sale", row: "A,01/05/23,1,$10.00,01/01/21,$5.00,W,$5.00", field: "wash_sales_loss", value: "W"},
		{name: "bad sold date", row: "A,2023-01-05,1,$10.00,01/01/21,$5.00,,$5.00", field: "sold_date", value: "2023-01-05"},
		{name: "bad acquired date", row: "A,01/05/23,1,$10.00,Various,$5.00,,$5.00", field: "acquired_date", value: "Various"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempCSV(t,
				robinhoodHeader,
				"OK,01/05/23,1,$10.00,01/01/21,$5.00,,$5.00",
				tt.row,
			)

			txns, err := broker.NewRobinhoodFormat().ParseFileToTransactions(context.Background(), path, 2023)
			assert.Nil(t, txns, "no partial result on failure")

			var fieldErr *domain.FieldParseError
			require.True(t, errors.As(err, &fieldErr), "got %v", err)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.value, fieldErr.Value)
			assert.Equal(t, 3, fieldErr.Line)
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}

func TestRobinhoodFormat_BareQuoteInDescription(t *testing.T) {
	path := createTempCSV(t,
		robinhoodHeader,
		`ACME 5" PIPE CORP,03/15/23,1.000000,$10.00,01/10/22,$8.00,,$2.00`,
	)

	txns, err := broker.NewRobinhoodFormat().ParseFileToTransactions(context.Background(), path, 2023)

	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, `ACME 5" PIPE CORP`, txns[0].Description)
	assert.True(t, decimal.RequireFromString("8.00").Equal(txns[0].CostBasis))
}

func TestRobinhoodFormat_MissingColumn(t *testing.T) {
	path := createTempCSV(t,
		"description,sold_date,quantity,proceeds,wash_sales_loss,gain_loss",
		"A,01/05/23,1,$10.00,,$5.00",
	)

	_, err := broker.NewRobinhoodFormat().ParseFileToTransactions(context.Background(), path, 2023)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in CSV header: acquired_date, cost")
}

func TestRobinhoodFormat_RaggedRow(t *testing.T) {
	path := createTempCSV(t,
		robinhoodHeader,
		"A,01/05/23,1,$10.00",
	)

	_, err := broker.NewRobinhoodFormat().ParseFileToTransactions(context.Background(), path, 2023)

	assert.Error(t, err)
}

func TestRobinhoodFormat_IsFileForBroker(t *testing.T) {
	format := broker.NewRobinhoodFormat()

	ok, err := format.IsFileForBroker("testdata/robinhood_2023.csv")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = format.IsFileForBroker("testdata/form8949_2023.csv")
	require.NoError(t, err)
	assert.False(t, ok)

	reordered := createTempCSV(t, "sold_date,description,quantity,proceeds,acquired_date,cost,wash_sales_loss,gain_loss")
	ok, err = format.IsFileForBroker(reordered)
	require.NoError(t, err)
	assert.False(t, ok, "columns must appear in the layout order")

	_, err = format.IsFileForBroker(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestForm8949Format_ParseFileToTransactions(t *testing.T) {
	format := broker.NewForm8949Format()

	ok, err := format.IsFileForBroker("testdata/form8949_2023.csv")
	require.NoError(t, err)
	require.True(t, ok)

	txns, err := format.ParseFileToTransactions(context.Background(), "testdata/form8949_2023.csv", 2023)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "VTI 5 sh", txns[0].Description)
	assert.Equal(t, domain.LongTermCovered, txns[0].EntryCode)
	assert.False(t, txns[0].HasAdjustment())

	assert.Equal(t, domain.ShortTermCovered, txns[1].EntryCode)
	assert.True(t, decimal.RequireFromString("15").Equal(txns[1].Adjustment.Decimal))
}

func TestTabularFormat_WithoutAdjustmentColumn(t *testing.T) {
	format := broker.NewTabularFormat(broker.Layout{
		Name:               "Minimal",
		Columns:            []string{"Symbol", "Bought", "Sold", "Basis", "Sale"},
		DateFormat:         "2006-01-02",
		DescriptionColumn:  "symbol",
		AcquiredDateColumn: "bought",
		SoldDateColumn:     "sold",
		CostColumn:         "basis",
		ProceedsColumn:     "sale",
		Reporting:          domain.BasisNotReported,
	})
	path := createTempCSV(t,
		"Symbol,Bought,Sold,Basis,Sale",
		"XYZ,2019-05-01,2023-05-02,100,250",
	)

	txns, err := format.ParseFileToTransactions(context.Background(), path, 2023)
	require.NoError(t, err)

	require.Len(t, txns, 1)
	assert.Equal(t, "Minimal", format.Name())
	assert.False(t, txns[0].HasAdjustment())
	assert.Equal(t, domain.LongTermNoncovered, txns[0].EntryCode)
}
