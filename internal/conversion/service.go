package conversion

import (
	"log/slog"

	"unit-converter/internal/types"
)

// Service converts requests and lists the available categories
type Service interface {
	// Convert runs a single conversion
	Convert(req Request) (*Result, error)
	// Catalog lists every category with its units, in display order
	Catalog() []CategoryInfo
}

// conversionService implements the Service interface
type conversionService struct {
	logger *slog.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(logger *slog.Logger) Service {
	return &conversionService{
		logger: logger.With("component", "conversion-service"),
	}
}

// Convert delegates to the engine. Engine errors are returned unchanged.
func (s *conversionService) Convert(req Request) (*Result, error) {
	value, err := Convert(req.Category, req.From, req.To, req.Magnitude)
	if err != nil {
		s.logger.Debug("conversion rejected",
			"category", req.Category,
			"from", req.From,
			"to", req.To,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug("converted",
		"category", req.Category,
		"from", req.From,
		"to", req.To,
		"magnitude", req.Magnitude,
		"result", value,
	)

	return &Result{Request: req, Value: value}, nil
}

func (s *conversionService) Catalog() []CategoryInfo {
	categories := types.Categories()
	catalog := make([]CategoryInfo, 0, len(categories))
	for _, c := range categories {
		catalog = append(catalog, newCategoryInfo(c))
	}
	return catalog
}
