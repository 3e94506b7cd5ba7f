package upload

import (
	"context"
	"fmt"

	"bucket-catalog/core/storage"

	"go.uber.org/zap"
)

// Store is the subset of the object store uploads write to.
type Store interface {
	PutObject(ctx context.Context, key string, data []byte) error
	PutTags(ctx context.Context, key string, tagSet []storage.Tag) error
}

// TagKey is the tag holding the uploaded file's tag string.
const TagKey = "tags"

// Service writes uploaded files and their tags.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new upload service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Upload stores data under fileName and then replaces the object's tag set
// with a single "tags" tag.
//
// The two writes are not atomic. When the tag write fails the object stays
// in the bucket untagged and ErrPartialUpload is returned. Tag strings S3
// would refuse are rejected with ErrInvalidTags before anything is written.
// Existing objects with the same name are overwritten.
func (s *Service) Upload(ctx context.Context, fileName string, data []byte, tags string) error {
	tagSet := []storage.Tag{{Key: TagKey, Value: tags}}
	if err := storage.ValidateTags(tagSet); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTags, err)
	}

	if err := s.store.PutObject(ctx, fileName, data); err != nil {
		return fmt.Errorf("failed to store %s: %w", fileName, err)
	}

	if err := s.store.PutTags(ctx, fileName, tagSet); err != nil {
		s.logger.Warn("Object stored but tagging failed",
			zap.String("file", fileName),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s: %w", ErrPartialUpload, fileName, err)
	}

	s.logger.Info("Upload stored",
		zap.String("file", fileName),
		zap.Int("bytes", len(data)),
		zap.String("tags", tags),
	)
	return nil
}
