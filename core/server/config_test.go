package server_test

import (
	"testing"

	"bucket-catalog/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, 32 * 1024 * 1024},
		{"Negative", -1, 32 * 1024 * 1024},
		{"Custom", 4, 4 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_Fiber(t *testing.T) {
	cfg := server.Config{BodyLimitMB: 4}.Fiber()

	assert.Equal(t, 4*1024*1024, cfg.BodyLimit)
	assert.True(t, cfg.DisableStartupMessage)
	assert.True(t, cfg.DisablePreParseMultipartForm)
}
