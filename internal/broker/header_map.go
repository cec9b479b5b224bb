package broker

import (
	"fmt"
	"strings"
)

// columnIndex maps a layout's column names to their position in the CSV header
type columnIndex map[string]int

// newColumnIndex matches the required columns against header, ignoring case and
// surrounding spaces. Every missing column is reported at once.
func newColumnIndex(header []string, required []string) (columnIndex, error) {
	index := make(columnIndex, len(required))
	var missing []string

	for _, column := range required {
		found := false
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				index[column] = i
				found = true
				break
			}
		}

		if !found {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required columns not found in CSV header: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

// cell returns the raw value of column in row
func (idx columnIndex) cell(row []string, column string) string {
	return row[idx[column]]
}
