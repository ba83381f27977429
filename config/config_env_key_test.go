package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"pushAudience": "",
		},
		"storage": map[string]any{
			"buckets": map[string]any{
				"kyc-documents": map[string]any{
					"url": "mem://",
				},
			},
		},
		"identity": map[string]any{
			"credentialsPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "STORAGE_BUCKETS_KYCDOCUMENTS_URL", want: "storage.buckets.kyc-documents.url"},
		{envKey: "IDENTITY_CREDENTIALSPATH", want: "identity.credentialsPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, time.Hour, cfg.Storage.SignedURLExpiry)
	assert.Equal(t, defaultFeedBufferSize, cfg.Feed.BufferSize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "autobid", cfg.Metrics.Namespace)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Worker:  &WorkerConfig{Port: 9090},
		Storage: &StorageConfig{SignedURLExpiry: 5 * time.Minute},
		Metrics: &MetricsConfig{Enabled: false, Namespace: "admin"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Worker.Port)
	assert.Equal(t, 5*time.Minute, cfg.Storage.SignedURLExpiry)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "admin", cfg.Metrics.Namespace)
}
