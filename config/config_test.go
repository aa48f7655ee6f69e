package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("reads the full configuration", func(t *testing.T) {
		t.Setenv("PAYSTACK_PUBLIC_KEY", "pk_test_abc")
		t.Setenv("PAYSTACK_LOG_LEVEL", "debug")
		t.Setenv("PAYSTACK_TIMEOUT", "30s")
		t.Setenv("PAYSTACK_ENABLE_METRICS", "true")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "pk_test_abc", cfg.PublicKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.True(t, cfg.EnableMetrics)
	})

	t.Run("public key is required", func(t *testing.T) {
		t.Setenv("PAYSTACK_PUBLIC_KEY", "")

		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("PAYSTACK_PUBLIC_KEY", "pk_test_abc")
		t.Setenv("PAYSTACK_LOG_LEVEL", "loud")

		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		t.Setenv("PAYSTACK_PUBLIC_KEY", "pk_test_abc")
		t.Setenv("PAYSTACK_TIMEOUT", "soon")

		_, err := FromEnv()
		assert.Error(t, err)
	})
}
