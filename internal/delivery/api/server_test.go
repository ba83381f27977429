package api

import (
	"testing"

	"autobid/config"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	open := corsConfig(&config.Config{})
	assert.Equal(t, []string{"*"}, open.AllowOrigins)
	assert.False(t, open.AllowCredentials)
	assert.Equal(t, []string{"X-Request-Id"}, open.ExposeHeaders)

	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://admin.autobid.ph"}
	restricted := corsConfig(cfg)
	assert.Equal(t, []string{"https://admin.autobid.ph"}, restricted.AllowOrigins)
	assert.True(t, restricted.AllowCredentials)
}

func TestMetricsEnabled(t *testing.T) {
	assert.True(t, metricsEnabled(&config.Config{}))
	assert.True(t, metricsEnabled(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}))
	assert.False(t, metricsEnabled(&config.Config{Metrics: &config.MetricsConfig{}}))
}
