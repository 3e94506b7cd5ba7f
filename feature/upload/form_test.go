package upload

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		boundary    string
		err         error
	}{
		{"Valid", "multipart/form-data; boundary=abc123", "abc123", nil},
		{"QuotedBoundary", `multipart/form-data; boundary="a b"`, "a b", nil},
		{"MissingBoundary", "multipart/form-data", "", ErrMissingBoundary},
		{"JSON", "application/json", "", ErrNotMultipart},
		{"Mixed", "multipart/mixed; boundary=abc", "", ErrNotMultipart},
		{"Empty", "", "", ErrNotMultipart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boundary, err := CheckContentType(tt.contentType)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.boundary, boundary)
		})
	}
}

func buildForm(t *testing.T, fields map[string]string, files map[string][]byte) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for k, v := range files {
		fw, err := w.CreateFormFile(k, k+".bin")
		require.NoError(t, err)
		_, err = fw.Write(v)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestParseForm(t *testing.T) {
	t.Run("AllParts", func(t *testing.T) {
		form := buildForm(t,
			map[string]string{"fileName": "a.png", "tags": "cat1,cat2"},
			map[string][]byte{"file": []byte("PNGDATA")},
		)

		sub, err := ParseForm(form)
		require.NoError(t, err)
		assert.Equal(t, "a.png", sub.FileName)
		assert.Equal(t, "cat1,cat2", sub.Tags)
		assert.Equal(t, []byte("PNGDATA"), sub.Data)
	})

	t.Run("TextSentAsFileParts", func(t *testing.T) {
		form := buildForm(t, nil, map[string][]byte{
			"fileName": []byte("b.png"),
			"tags":     []byte("x"),
			"file":     []byte{0x00, 0xff},
		})

		sub, err := ParseForm(form)
		require.NoError(t, err)
		assert.Equal(t, "b.png", sub.FileName)
		assert.Equal(t, "x", sub.Tags)
		assert.Equal(t, []byte{0x00, 0xff}, sub.Data)
	})

	t.Run("MissingParts", func(t *testing.T) {
		form := buildForm(t, map[string]string{"other": "ignored"}, nil)

		sub, err := ParseForm(form)
		require.NoError(t, err)
		assert.Empty(t, sub.FileName)
		assert.Empty(t, sub.Tags)
		assert.Empty(t, sub.Data)
	})

	t.Run("NilForm", func(t *testing.T) {
		sub, err := ParseForm(nil)
		require.NoError(t, err)
		assert.Equal(t, Submission{}, sub)
	})

	t.Run("InvalidUTF8Tags", func(t *testing.T) {
		form := buildForm(t, map[string]string{"fileName": "a.png", "tags": string([]byte{0xff, 0xfe})}, nil)

		_, err := ParseForm(form)
		assert.ErrorIs(t, err, ErrInvalidFieldEncoding)
		assert.Contains(t, err.Error(), "tags")
	})

	t.Run("InvalidUTF8FileName", func(t *testing.T) {
		form := buildForm(t, map[string]string{"fileName": string([]byte{0xc3, 0x28})}, nil)

		_, err := ParseForm(form)
		assert.ErrorIs(t, err, ErrInvalidFieldEncoding)
	})
}
