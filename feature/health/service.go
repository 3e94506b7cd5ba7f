package health

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrBucketMissing is returned when the backend answers but the bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// Prober reports whether the catalog bucket is reachable.
type Prober interface {
	Name() string
	Exists(ctx context.Context) (bool, error)
}

// Report is the response body of GET /health.
type Report struct {
	Status string `json:"status"`
	Bucket string `json:"bucket,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Service runs health probes.
type Service struct {
	prober Prober
	logger *zap.Logger
}

// NewService creates a new health service.
func NewService(prober Prober, logger *zap.Logger) *Service {
	return &Service{prober: prober, logger: logger}
}

// Check probes the bucket. A nil error means it is reachable.
func (s *Service) Check(ctx context.Context) error {
	ok, err := s.prober.Exists(ctx)
	if err != nil {
		return fmt.Errorf("probe %s: %w", s.prober.Name(), err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", s.prober.Name(), ErrBucketMissing)
	}
	return nil
}
