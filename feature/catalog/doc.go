// Package catalog builds the browsable view of the bucket.
//
// Three independently fetched facts are reconciled per stored object: the
// listing entry (name, size, ETag), its tag set and a presigned access URL.
//
// # Pipeline
//
//  1. Aggregator lists the bucket and skips folder markers (size 0).
//  2. Builder rejects objects without a name (ErrFileWithNoName), reads the
//     tag set and extracts the single "tags" value (ErrMultipleTagsWithSameName
//     when there are several).
//  3. Matches decides visibility. Only visible entries get a presigned URL;
//     the others are marked hidden without any signing call.
//  4. Aggregator stops at the first error, otherwise drops hidden entries
//     and keeps listing order.
//
// # HTTP Endpoints
//
//   - GET /contents?filter=<term> : {"data": [{fileName, presignedUrl, tags, eTag}]}
package catalog
