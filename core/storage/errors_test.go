package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"Deadline", context.DeadlineExceeded, KindTimeout},
		{"Canceled", fmt.Errorf("wrapped: %w", context.Canceled), KindTimeout},
		{"NoSuchKey", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}, KindNotFound},
		{"NoSuchBucket", minio.ErrorResponse{Code: "NoSuchBucket"}, KindNotFound},
		{"AccessDenied", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}, KindPermissionDenied},
		{"BadSignature", minio.ErrorResponse{Code: "SignatureDoesNotMatch"}, KindPermissionDenied},
		{"InvalidTag", minio.ErrorResponse{Code: "InvalidTag", StatusCode: 400}, KindInvalidInput},
		{"SlowDown", minio.ErrorResponse{Code: "SlowDown", StatusCode: 503}, KindTimeout},
		{"Status404", minio.ErrorResponse{StatusCode: 404}, KindNotFound},
		{"Status401", minio.ErrorResponse{StatusCode: 401}, KindPermissionDenied},
		{"Network", errors.New("dial tcp: connection refused"), KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := wrapError("get_tags", "a.png", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `storage get_tags "a.png" [unavailable]: boom`, err.Error())
	assert.Nil(t, wrapError("get_tags", "a.png", nil))
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, "unknown", KindUnknown.String())
}
