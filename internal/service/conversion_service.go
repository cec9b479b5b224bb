package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tirasundara/csv2txf/internal/domain"
	"github.com/tirasundara/csv2txf/internal/logger"
)

// BrokerSelector picks the broker format of an export file
type BrokerSelector interface {
	Select(name, path string) (domain.BrokerFormat, error)
}

// ConversionRequest describes one export to convert
type ConversionRequest struct {
	Path    string
	Broker  string // empty to detect the broker from the file
	TaxYear int    // 0 keeps every year
}

// ConversionService orchestrates the conversion of broker exports
type ConversionService struct {
	selector BrokerSelector
}

// NewConversionService creates a new ConversionService
func NewConversionService(selector BrokerSelector) *ConversionService {
	return &ConversionService{
		selector: selector,
	}
}

// Convert selects the broker format of the file and parses its lots.
// Nothing is returned but the error when any step fails.
func (s *ConversionService) Convert(ctx context.Context, req ConversionRequest) (domain.Conversion, error) {
	runID := uuid.NewString()
	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"run_id": runID,
		"file":   req.Path,
	})

	format, err := s.selector.Select(req.Broker, req.Path)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("selecting broker: %w", err)
	}

	log = log.With().Str("broker", format.Name()).Logger()
	log.Debug().Int("tax_year", req.TaxYear).Msg("parsing export")

	txns, err := format.ParseFileToTransactions(logger.WithContext(ctx, log), req.Path, req.TaxYear)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("parsing %s export: %w", format.Name(), err)
	}

	log.Info().Int("transactions", len(txns)).Msg("export parsed")

	return domain.Conversion{
		RunID:        runID,
		Broker:       format.Name(),
		TaxYear:      req.TaxYear,
		Transactions: txns,
	}, nil
}
