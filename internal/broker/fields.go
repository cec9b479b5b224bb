package broker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

// ParseCurrency parses a broker money token such as "$1,234.56 CR".
// Thousands separators and the dollar sigil are dropped and only the first
// whitespace separated segment is kept, so trailing qualifiers are ignored.
func ParseCurrency(raw string) (decimal.Decimal, error) {
	segments := strings.Fields(strings.ReplaceAll(raw, ",", ""))
	if len(segments) == 0 {
		return decimal.Zero, errEmptyAmount
	}

	token := strings.Replace(segments[0], "$", "", 1)
	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %w", err)
	}
	return amount, nil
}

// ParseDate parses a calendar date with a Go layout and drops any time of day
func ParseDate(raw, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
