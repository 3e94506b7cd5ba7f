package memstore

import (
	"context"
	"strings"
	"testing"

	"bucket-catalog/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutTags(t *testing.T) {
	ctx := context.Background()

	t.Run("AcceptsWhatBucketAccepts", func(t *testing.T) {
		s := New()
		require.NoError(t, s.PutTags(ctx, "a.png", []storage.Tag{{Key: "tags", Value: "cat1,café"}}))

		tagSet, err := s.GetTags(ctx, "a.png")
		require.NoError(t, err)
		assert.Equal(t, []storage.Tag{{Key: "tags", Value: "cat1,café"}}, tagSet)
	})

	t.Run("RejectsWhatBucketRejects", func(t *testing.T) {
		s := New()

		err := s.PutTags(ctx, "a.png", []storage.Tag{{Key: "tags", Value: "a"}, {Key: "tags", Value: "b"}})
		assert.ErrorIs(t, err, storage.ErrDuplicateTagKey)
		assert.Equal(t, storage.KindInvalidInput, storage.KindOf(err))

		err = s.PutTags(ctx, "a.png", []storage.Tag{{Key: "tags", Value: strings.Repeat("v", 257)}})
		assert.ErrorIs(t, err, storage.ErrInvalidTagValue)
	})

	t.Run("AddStagesRepeatedKeys", func(t *testing.T) {
		s := New()
		s.Add(storage.Object{Key: "x.jpg", Size: 1}, storage.Tag{Key: "tags", Value: "a"}, storage.Tag{Key: "tags", Value: "b"})

		tagSet, err := s.GetTags(ctx, "x.jpg")
		require.NoError(t, err)
		assert.Len(t, tagSet, 2)
	})
}
