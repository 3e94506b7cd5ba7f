package upload

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"unicode/utf8"
)

// Names of the form parts read from an upload request.
const (
	PartFileName = "fileName"
	PartTags     = "tags"
	PartFile     = "file"
)

// Submission is the decoded content of an upload form.
type Submission struct {
	FileName string
	Tags     string
	Data     []byte
}

// CheckContentType validates the request content type and returns the boundary.
func CheckContentType(contentType string) (string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		return "", ErrNotMultipart
	}
	boundary := params["boundary"]
	if boundary == "" {
		return "", ErrMissingBoundary
	}
	return boundary, nil
}

// ParseForm flattens form into named parts and extracts the submission.
// Absent parts are left empty.
func ParseForm(form *multipart.Form) (Submission, error) {
	parts, err := namedParts(form)
	if err != nil {
		return Submission{}, err
	}

	fileName := parts[PartFileName]
	if !utf8.Valid(fileName) {
		return Submission{}, fmt.Errorf("%s: %w", PartFileName, ErrInvalidFieldEncoding)
	}
	tags := parts[PartTags]
	if !utf8.Valid(tags) {
		return Submission{}, fmt.Errorf("%s: %w", PartTags, ErrInvalidFieldEncoding)
	}

	return Submission{
		FileName: string(fileName),
		Tags:     string(tags),
		Data:     parts[PartFile],
	}, nil
}

// namedParts maps every part name to its content. Value parts and file parts
// share one namespace; the first occurrence of a name wins.
func namedParts(form *multipart.Form) (map[string][]byte, error) {
	parts := make(map[string][]byte)
	if form == nil {
		return parts, nil
	}

	for name, values := range form.Value {
		if len(values) > 0 {
			parts[name] = []byte(values[0])
		}
	}

	for name, headers := range form.File {
		if _, ok := parts[name]; ok || len(headers) == 0 {
			continue
		}
		data, err := readFile(headers[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", name, err)
		}
		parts[name] = data
	}

	return parts, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
