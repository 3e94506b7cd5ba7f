package catalog

import (
	"context"
	"fmt"

	"bucket-catalog/core/storage"
)

// TagKey is the tag whose value holds an object's comma separated categories.
const TagKey = "tags"

// Store is the subset of the object store the catalog reads from.
type Store interface {
	ListObjects(ctx context.Context) ([]storage.Object, error)
	GetTags(ctx context.Context, key string) ([]storage.Tag, error)
	AccessURL(ctx context.Context, key string) (string, error)
}

// Entry is one file of the catalog.
type Entry struct {
	FileName     string `json:"fileName"`
	PresignedURL string `json:"presignedUrl"`
	Tags         string `json:"tags"`
	ETag         string `json:"eTag"`
	// Hidden marks entries rejected by the filter; they never leave the aggregator.
	Hidden bool `json:"-"`
}

// Builder turns raw storage objects into catalog entries.
type Builder struct {
	store Store
}

// NewBuilder creates a Builder reading from store.
func NewBuilder(store Store) *Builder {
	return &Builder{store: store}
}

// Build fetches the tags of obj, applies the filter and, only when the entry
// is visible, mints its access URL.
func (b *Builder) Build(ctx context.Context, obj storage.Object, term string) (Entry, error) {
	if obj.Key == "" {
		return Entry{}, ErrFileWithNoName
	}

	tagSet, err := b.store.GetTags(ctx, obj.Key)
	if err != nil {
		return Entry{}, err
	}

	tagString, err := tagValue(tagSet)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", obj.Key, err)
	}

	entry := Entry{
		FileName: obj.Key,
		Tags:     tagString,
		ETag:     obj.ETag,
	}

	if !Matches(obj.Key, tagString, term) {
		entry.Hidden = true
		return entry, nil
	}

	url, err := b.store.AccessURL(ctx, obj.Key)
	if err != nil {
		return Entry{}, err
	}
	entry.PresignedURL = url

	return entry, nil
}

// tagValue returns the value of the single "tags" tag, or "" when there is none.
func tagValue(tagSet []storage.Tag) (string, error) {
	var (
		value string
		found int
	)
	for _, t := range tagSet {
		if t.Key != TagKey {
			continue
		}
		found++
		value = t.Value
	}
	if found > 1 {
		return "", ErrMultipleTagsWithSameName
	}
	return value, nil
}
