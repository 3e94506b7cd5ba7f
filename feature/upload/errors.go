package upload

import "errors"

var (
	// ErrNotMultipart is returned when the request is not multipart/form-data.
	ErrNotMultipart = errors.New("content type is not multipart/form-data")
	// ErrMissingBoundary is returned when the multipart boundary parameter is absent.
	ErrMissingBoundary = errors.New("multipart/form-data boundary param not provided")
	// ErrInvalidFieldEncoding is returned when a text part is not valid UTF-8.
	ErrInvalidFieldEncoding = errors.New("form field is not valid UTF-8")
	// ErrInvalidTags is returned when the tag string cannot be stored as an object tag.
	ErrInvalidTags = errors.New("tag string cannot be stored")
	// ErrPartialUpload is returned when the object was written but its tags were not.
	ErrPartialUpload = errors.New("object stored without tags")
)
