// Package llm wraps the hosted text-generation model used to enhance ATS feedback.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short advisory text such as feedback rewrites
	TierLite ModelTier = "lite"
	// TierStandard is for longer or more structured answers
	TierStandard ModelTier = "standard"
)

// DefaultTemperature keeps feedback wording stable across runs.
const DefaultTemperature float32 = 0.2

// Config holds model selection for the Gemini client
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: DefaultTemperature,
	}
}

// GetModel returns the model name for a given tier, falling back to standard and then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with model assigned to tier.
// An empty model leaves the tier unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	if model != "" {
		out.Models[tier] = model
	}
	return out
}
