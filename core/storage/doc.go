// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, which speaks to AWS S3 as well as self-hosted
// MinIO instances, and binds it to the single bucket this service catalogs.
//
// # Client Interface
//
// The Client interface is the raw SDK surface (listing, uploads, object tagging
// and URL presigning). It exists so the SDK can be replaced by
// core/storage/mocks in unit tests. Tag sets travel as S3 Tagging XML
// documents so values outside minio-go's tag character set (commas,
// non-ASCII text) can be stored.
//
// # Bucket
//
// Bucket is the bucket-bound object store used by the features:
//
//   - ListObjects: every object of the bucket, in listing order.
//   - GetTags / PutTags: read or replace an object's tag set.
//   - AccessURL: presign a read-only URL (local signing, no backend round trip).
//   - PutObject: upload bytes, overwriting any existing object.
//
// Every failure is returned as *Error carrying a Kind (not_found,
// permission_denied, timeout, unavailable, ...).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket := storage.NewBucket(client, cfg.Storage.Bucket, cfg.Storage.PresignTTL(), nil)
//	objects, err := bucket.ListObjects(ctx)
package storage
