package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Contents is the response body of GET /contents.
type Contents struct {
	Data Catalog `json:"data"`
}

// Service serves catalog requests.
type Service struct {
	aggregator *Aggregator
	logger     *zap.Logger
}

// NewService creates a new catalog service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		aggregator: NewAggregator(store, logger),
		logger:     logger,
	}
}

// Contents returns the visible files of the bucket under the filter term.
func (s *Service) Contents(ctx context.Context, term string) (*Contents, error) {
	cat, err := s.aggregator.Build(ctx, term)
	if err != nil {
		return nil, err
	}
	return &Contents{Data: cat}, nil
}
