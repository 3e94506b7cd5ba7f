package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTags(t *testing.T) {
	eleven := make([]Tag, 11)
	for i := range eleven {
		eleven[i] = Tag{Key: strings.Repeat("k", i+1)}
	}

	tests := []struct {
		name   string
		tagSet []Tag
		err    error
	}{
		{"CommaSeparated", []Tag{{Key: "tags", Value: "cat1,cat2"}}, nil},
		{"NonASCII", []Tag{{Key: "étiquette", Value: "日本,café"}}, nil},
		{"EmptyValue", []Tag{{Key: "tags", Value: ""}}, nil},
		{"Empty", nil, nil},
		{"EmptyKey", []Tag{{Key: "", Value: "x"}}, ErrInvalidTagKey},
		{"LongKey", []Tag{{Key: strings.Repeat("k", 129)}}, ErrInvalidTagKey},
		{"LongValue", []Tag{{Key: "tags", Value: strings.Repeat("é", 257)}}, ErrInvalidTagValue},
		{"InvalidUTF8", []Tag{{Key: "tags", Value: string([]byte{0xff})}}, ErrInvalidTagValue},
		{"Duplicate", []Tag{{Key: "tags", Value: "a"}, {Key: "tags", Value: "b"}}, ErrDuplicateTagKey},
		{"TooMany", eleven, ErrTooManyTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTags(tt.tagSet)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEncodeTagging(t *testing.T) {
	t.Run("KeepsOrder", func(t *testing.T) {
		doc, err := encodeTagging([]Tag{{Key: "tags", Value: "b,a"}, {Key: "author", Value: "x"}})

		require.NoError(t, err)
		assert.Equal(t,
			`<Tagging><TagSet><Tag><Key>tags</Key><Value>b,a</Value></Tag><Tag><Key>author</Key><Value>x</Value></Tag></TagSet></Tagging>`,
			string(doc))
	})

	t.Run("EmptySetStillHasTagSet", func(t *testing.T) {
		doc, err := encodeTagging(nil)

		require.NoError(t, err)
		assert.Equal(t, `<Tagging><TagSet></TagSet></Tagging>`, string(doc))
	})
}

func TestDecodeTagging(t *testing.T) {
	t.Run("EmptyBody", func(t *testing.T) {
		tagSet, err := decodeTagging(nil)
		require.NoError(t, err)
		assert.Equal(t, []Tag{}, tagSet)
	})

	t.Run("NotXML", func(t *testing.T) {
		_, err := decodeTagging([]byte("tags=cat1"))
		assert.Error(t, err)
	})
}
