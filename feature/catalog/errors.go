package catalog

import "errors"

var (
	// ErrFileWithNoName is returned when the listing contains an object without a key.
	ErrFileWithNoName = errors.New("encountered bucket objects with no name")
	// ErrMultipleTagsWithSameName is returned when an object carries more than one "tags" tag.
	ErrMultipleTagsWithSameName = errors.New("encountered a file with more than one tag named 'tags'")
)

// IsTaxonomyError reports whether err is one of the catalog's business rule violations.
func IsTaxonomyError(err error) bool {
	return errors.Is(err, ErrFileWithNoName) || errors.Is(err, ErrMultipleTagsWithSameName)
}
