// Package memstore is an in-memory object store used by feature tests.
//
// Writes go through the same tag limits as storage.Bucket. Add bypasses them
// so listings without a key and tag sets with repeated keys can be staged.
package memstore

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"

	"bucket-catalog/core/storage"
)

// Store is a goroutine-safe in-memory bucket.
type Store struct {
	mu      sync.RWMutex
	objects []storage.Object
	data    map[string][]byte
	tags    map[string][]storage.Tag
	signs   int
	counter map[string]int

	// Errors injected per operation name ("list", "tags", "presign", "put_object", "put_tags").
	Fail map[string]error
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		data:    make(map[string][]byte),
		tags:    make(map[string][]storage.Tag),
		counter: make(map[string]int),
		Fail:    make(map[string]error),
	}
}

// Add appends a raw listing entry with its tag set.
func (s *Store) Add(obj storage.Object, tagSet ...storage.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
	if obj.Key != "" {
		s.tags[obj.Key] = tagSet
	}
}

// Calls returns how many times op was invoked.
func (s *Store) Calls(op string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter[op]
}

// Data returns the stored bytes of key.
func (s *Store) Data(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	return b, ok
}

func (s *Store) ListObjects(ctx context.Context) ([]storage.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter["list"]++
	if err := s.Fail["list"]; err != nil {
		return nil, err
	}
	out := make([]storage.Object, len(s.objects))
	copy(out, s.objects)
	return out, nil
}

func (s *Store) GetTags(ctx context.Context, key string) ([]storage.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter["tags"]++
	if err := s.Fail["tags"]; err != nil {
		return nil, err
	}
	out := make([]storage.Tag, len(s.tags[key]))
	copy(out, s.tags[key])
	return out, nil
}

// AccessURL returns a fake signed URL; the signature changes on every call.
func (s *Store) AccessURL(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter["presign"]++
	if err := s.Fail["presign"]; err != nil {
		return "", err
	}
	s.signs++
	return fmt.Sprintf("https://bucket.example.com/%s?X-Amz-Expires=1800&X-Amz-Signature=%d", key, s.signs), nil
}

// PutObject stores data, replacing an existing object with the same key.
func (s *Store) PutObject(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter["put_object"]++
	if err := s.Fail["put_object"]; err != nil {
		return err
	}

	sum := md5.Sum(data)
	obj := storage.Object{Key: key, Size: int64(len(data)), ETag: hex.EncodeToString(sum[:])}
	s.data[key] = append([]byte(nil), data...)
	for i := range s.objects {
		if s.objects[i].Key == key {
			s.objects[i] = obj
			return nil
		}
	}
	s.objects = append(s.objects, obj)
	return nil
}

// PutTags replaces the tag set of key. It applies the same limits as
// storage.Bucket; only Add can stage tag sets S3 would refuse.
func (s *Store) PutTags(ctx context.Context, key string, tagSet []storage.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter["put_tags"]++
	if err := s.Fail["put_tags"]; err != nil {
		return err
	}
	if err := storage.ValidateTags(tagSet); err != nil {
		return &storage.Error{Op: "put_tags", Key: key, Kind: storage.KindInvalidInput, Err: err}
	}
	s.tags[key] = append([]storage.Tag(nil), tagSet...)
	return nil
}
