package storage

import (
	"encoding/xml"
	"errors"
	"fmt"
	"unicode/utf8"
)

// S3 limits for object tag sets.
const (
	MaxObjectTags  = 10
	MaxTagKeyLen   = 128
	MaxTagValueLen = 256
)

var (
	// ErrTooManyTags is returned when a tag set exceeds MaxObjectTags.
	ErrTooManyTags = errors.New("object tag set holds more than 10 tags")
	// ErrInvalidTagKey is returned for empty, oversized or non UTF-8 keys.
	ErrInvalidTagKey = errors.New("invalid tag key")
	// ErrInvalidTagValue is returned for oversized or non UTF-8 values.
	ErrInvalidTagValue = errors.New("invalid tag value")
	// ErrDuplicateTagKey is returned when a tag set repeats a key.
	ErrDuplicateTagKey = errors.New("tag set repeats a key")
)

// tagging is the S3 Tagging document. Decoding keeps document order and
// repeated keys.
type tagging struct {
	XMLName xml.Name   `xml:"Tagging"`
	TagSet  tagSetBody `xml:"TagSet"`
}

type tagSetBody struct {
	Tags []Tag `xml:"Tag"`
}

// ValidateTags checks tagSet against the limits S3 enforces on writes.
// Unlike minio-go's tag helpers it does not restrict the character set,
// so values such as "cat1,cat2" are accepted.
func ValidateTags(tagSet []Tag) error {
	if len(tagSet) > MaxObjectTags {
		return ErrTooManyTags
	}

	seen := make(map[string]struct{}, len(tagSet))
	for _, t := range tagSet {
		if t.Key == "" || utf8.RuneCountInString(t.Key) > MaxTagKeyLen || !utf8.ValidString(t.Key) {
			return fmt.Errorf("%w: %q", ErrInvalidTagKey, t.Key)
		}
		if utf8.RuneCountInString(t.Value) > MaxTagValueLen || !utf8.ValidString(t.Value) {
			return fmt.Errorf("%w for key %q", ErrInvalidTagValue, t.Key)
		}
		if _, ok := seen[t.Key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTagKey, t.Key)
		}
		seen[t.Key] = struct{}{}
	}
	return nil
}

func encodeTagging(tagSet []Tag) ([]byte, error) {
	doc := tagging{TagSet: tagSetBody{Tags: tagSet}}
	if doc.TagSet.Tags == nil {
		doc.TagSet.Tags = []Tag{}
	}
	return xml.Marshal(doc)
}

func decodeTagging(data []byte) ([]Tag, error) {
	if len(data) == 0 {
		return []Tag{}, nil
	}

	var doc tagging
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.TagSet.Tags == nil {
		return []Tag{}, nil
	}
	return doc.TagSet.Tags, nil
}
