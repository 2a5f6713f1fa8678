package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, DefaultTemperature, config.Temperature)
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{TierLite: "fallback-model"}}

	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
	assert.Equal(t, "fallback-model", config.GetModel(TierStandard))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierLite))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierLite, "custom-model")

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite), "original should be unchanged")
	assert.Equal(t, "custom-model", custom.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", custom.GetModel(TierStandard))
	assert.Equal(t, config.Temperature, custom.Temperature)

	assert.Equal(t, "gemini-2.5-flash-lite", config.WithModel(TierLite, "").GetModel(TierLite))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), nil, "")

	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, client)
}
