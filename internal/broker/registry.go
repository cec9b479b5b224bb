package broker

import (
	"fmt"
	"strings"

	"github.com/tirasundara/csv2txf/internal/domain"
)

// Registry selects the broker format of an export file.
// Formats are probed in registration order and the first match wins.
type Registry struct {
	formats []domain.BrokerFormat
}

// DefaultFormats returns the supported broker formats in probing order
func DefaultFormats() []domain.BrokerFormat {
	return []domain.BrokerFormat{
		NewRobinhoodFormat(),
		NewForm8949Format(),
	}
}

// NewRegistry creates a new Registry with the given formats
func NewRegistry(formats ...domain.BrokerFormat) *Registry {
	if len(formats) == 0 {
		formats = DefaultFormats()
	}

	return &Registry{
		formats: formats,
	}
}

// Names returns the registered format names in probing order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for _, format := range r.formats {
		names = append(names, format.Name())
	}
	return names
}

// Select returns the format called name, or detects the format of path when name is empty
func (r *Registry) Select(name, path string) (domain.BrokerFormat, error) {
	if name != "" {
		return r.Lookup(name, path)
	}
	return r.Detect(path)
}

// Lookup returns the format registered under name. An exact match is
// preferred over a case-insensitive one.
func (r *Registry) Lookup(name, path string) (domain.BrokerFormat, error) {
	for _, format := range r.formats {
		if format.Name() == name {
			return format, nil
		}
	}
	for _, format := range r.formats {
		if strings.EqualFold(format.Name(), name) {
			return format, nil
		}
	}

	return nil, &domain.FormatRecognitionError{
		Broker: name,
		Path:   path,
		Err:    fmt.Errorf("%w (available: %s)", domain.ErrUnknownBroker, strings.Join(r.Names(), ", ")),
	}
}

// Detect probes every format against path and returns the first that accepts it
func (r *Registry) Detect(path string) (domain.BrokerFormat, error) {
	for _, format := range r.formats {
		ok, err := format.IsFileForBroker(path)
		if err != nil {
			return nil, fmt.Errorf("probing %s: %w", format.Name(), err)
		}
		if ok {
			return format, nil
		}
	}

	return nil, &domain.FormatRecognitionError{
		Path: path,
		Err:  domain.ErrUnsupportedFile,
	}
}
