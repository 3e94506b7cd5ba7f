package storage

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
)

// Object is one entry of a bucket listing.
// An empty Key means the backend returned no name; Size 0 marks a folder.
type Object struct {
	Key  string
	Size int64
	ETag string
}

// IsFolder reports whether the object is a folder marker rather than a file.
func (o Object) IsFolder() bool {
	return o.Size <= 0
}

// Tag is a single key/value pair of an object's tag set.
type Tag struct {
	Key   string
	Value string
}

// Observer receives one call per backend operation.
type Observer interface {
	Observe(op string, bytes int64, err error, dur time.Duration)
}

// Bucket binds a Client to a single bucket and exposes the operations the
// catalog and upload features need.
type Bucket struct {
	client     Client
	name       string
	presignTTL time.Duration
	observer   Observer
}

// NewBucket creates a Bucket. observer may be nil.
func NewBucket(client Client, name string, presignTTL time.Duration, observer Observer) *Bucket {
	return &Bucket{
		client:     client,
		name:       name,
		presignTTL: presignTTL,
		observer:   observer,
	}
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Exists checks that the bucket is reachable and present.
func (b *Bucket) Exists(ctx context.Context) (bool, error) {
	start := time.Now()
	ok, err := b.client.BucketExists(ctx, b.name)
	b.observe("bucket_exists", 0, err, start)
	if err != nil {
		return false, wrapError("bucket_exists", "", err)
	}
	return ok, nil
}

// ListObjects returns every object in the bucket in listing order.
func (b *Bucket) ListObjects(ctx context.Context) ([]Object, error) {
	start := time.Now()
	opts := minio.ListObjectsOptions{Recursive: true}

	objects := make([]Object, 0)
	for info := range b.client.ListObjects(ctx, b.name, opts) {
		if info.Err != nil {
			b.observe("list_objects", 0, info.Err, start)
			return nil, wrapError("list_objects", "", info.Err)
		}
		objects = append(objects, Object{
			Key:  info.Key,
			Size: info.Size,
			ETag: info.ETag,
		})
	}
	b.observe("list_objects", 0, nil, start)

	return objects, nil
}

// GetTags returns the tag set of an object, sorted by key.
// Repeated keys are kept so callers can reject them.
func (b *Bucket) GetTags(ctx context.Context, key string) ([]Tag, error) {
	start := time.Now()
	doc, err := b.client.GetObjectTagging(ctx, b.name, key)
	b.observe("get_tags", 0, err, start)
	if err != nil {
		return nil, wrapError("get_tags", key, err)
	}

	tagSet, err := decodeTagging(doc)
	if err != nil {
		return nil, &Error{Op: "get_tags", Key: key, Kind: KindInvalidInput, Err: fmt.Errorf("malformed tag set: %w", err)}
	}
	sort.SliceStable(tagSet, func(i, j int) bool {
		return tagSet[i].Key < tagSet[j].Key
	})
	return tagSet, nil
}

// AccessURL signs a GET URL for key that stays valid for the configured TTL.
func (b *Bucket) AccessURL(ctx context.Context, key string) (string, error) {
	start := time.Now()
	u, err := b.client.PresignedGetObject(ctx, b.name, key, b.presignTTL, nil)
	b.observe("presign", 0, err, start)
	if err != nil {
		return "", wrapError("presign", key, err)
	}
	return u.String(), nil
}

// PutObject writes data under key, overwriting any existing object.
func (b *Bucket) PutObject(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	_, err := b.client.PutObject(ctx, b.name, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	b.observe("put_object", int64(len(data)), err, start)
	if err != nil {
		return wrapError("put_object", key, err)
	}
	return nil
}

// PutTags replaces the whole tag set of key with tagSet.
func (b *Bucket) PutTags(ctx context.Context, key string, tagSet []Tag) error {
	if err := ValidateTags(tagSet); err != nil {
		return &Error{Op: "put_tags", Key: key, Kind: KindInvalidInput, Err: err}
	}
	doc, err := encodeTagging(tagSet)
	if err != nil {
		return &Error{Op: "put_tags", Key: key, Kind: KindInvalidInput, Err: fmt.Errorf("invalid tag set: %w", err)}
	}

	start := time.Now()
	err = b.client.PutObjectTagging(ctx, b.name, key, doc)
	b.observe("put_tags", 0, err, start)
	if err != nil {
		return wrapError("put_tags", key, err)
	}
	return nil
}

func (b *Bucket) observe(op string, n int64, err error, start time.Time) {
	if b.observer == nil {
		return
	}
	b.observer.Observe(op, n, err, time.Since(start))
}
