package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eliolocin/GengoTavern-sub001/internal/config"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "assets/sprites", cfg.AssetRoot)
	assert.Equal(t, "assets/placeholder.png", cfg.PlaceholderURL)
	assert.Equal(t, "neutral", cfg.DefaultEmotion)
	assert.Equal(t, 300*time.Millisecond, cfg.FadeDwell)
	assert.Empty(t, cfg.AssetBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VN_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("VN_ASSET_BASE_URL", "https://cdn.example.com/sprites")
	t.Setenv("VN_DEFAULT_EMOTION", "joy")
	t.Setenv("VN_FADE_DWELL", "150ms")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, "https://cdn.example.com/sprites", cfg.AssetBaseURL)
	assert.Equal(t, "joy", cfg.DefaultEmotion)
	assert.Equal(t, 150*time.Millisecond, cfg.FadeDwell)
}

func TestValidate_RejectsNonPositiveDwell(t *testing.T) {
	t.Setenv("VN_FADE_DWELL", "0s")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
