// Package upload accepts new files for the bucket.
//
// A request is validated (multipart/form-data with a boundary), its form is
// flattened into named parts and the fileName, tags and file parts are read
// by name. The Service then writes the object and replaces its tag set with
// a single "tags" tag. The two writes are sequential and not transactional.
//
// # HTTP Endpoints
//
//   - POST /upload : multipart form with fileName, tags and file parts.
package upload
