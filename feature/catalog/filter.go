package catalog

import "strings"

// Matches reports whether an object is visible under the filter term.
// An empty term matches everything; otherwise term must be a case-sensitive
// substring of the tag string or of the file name.
func Matches(fileName, tagString, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(tagString, term) || strings.Contains(fileName, term)
}
