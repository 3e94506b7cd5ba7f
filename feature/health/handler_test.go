package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"bucket-catalog/core/storage"
	"bucket-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProber struct {
	exists bool
	err    error
}

func (p stubProber) Name() string { return "catalog" }

func (p stubProber) Exists(ctx context.Context) (bool, error) { return p.exists, p.err }

func request(t *testing.T, prober Prober) (int, Report) {
	t.Helper()
	app := fiber.New()
	require.NoError(t, NewFeature(prober, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	return resp.StatusCode, report
}

func TestHandleHealth(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		code, report := request(t, stubProber{exists: true})

		assert.Equal(t, 200, code)
		assert.Equal(t, Report{Status: "ok", Bucket: "catalog"}, report)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		code, report := request(t, stubProber{exists: false})

		assert.Equal(t, 503, code)
		assert.Equal(t, "unavailable", report.Status)
		assert.Contains(t, report.Error, ErrBucketMissing.Error())
	})

	t.Run("BackendError", func(t *testing.T) {
		code, report := request(t, stubProber{err: errors.New("connection refused")})

		assert.Equal(t, 503, code)
		assert.Contains(t, report.Error, "connection refused")
	})

	t.Run("StorageBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		bucket := storage.NewBucket(client, "catalog", 0, nil)

		code, report := request(t, bucket)

		assert.Equal(t, 200, code)
		assert.Equal(t, "catalog", report.Bucket)
		client.AssertExpectations(t)
	})
}

func TestLoader(t *testing.T) {
	feature := NewFeature(stubProber{exists: true}, zap.NewNop())

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
