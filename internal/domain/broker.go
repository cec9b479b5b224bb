package domain

import "context"

// BrokerFormat recognizes and parses one broker export layout
//
//go:generate mockgen -destination=mocks/mock_broker.go -source=broker.go BrokerFormat
type BrokerFormat interface {
	// Name returns a human readable identifier of the layout
	Name() string

	// IsFileForBroker checks the file signature (its header line) without parsing the rows
	IsFileForBroker(path string) (bool, error)

	// ParseFileToTransactions parses every lot sold in taxYear, in file order.
	// A zero taxYear accepts all years.
	ParseFileToTransactions(ctx context.Context, path string, taxYear int) ([]Transaction, error)
}
