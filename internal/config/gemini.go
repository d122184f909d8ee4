package config

type GeminiConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
	// Overrides the Gemini API endpoint; empty uses the public one.
	BaseURL string `json:"base_url"`
	// Extra attempts after a retryable failure. Zero means one call per listing.
	MaxRetries int `json:"max_retries"`
}

func (c *GeminiConfig) fromEnv() {
	c.APIKey = setting("GEMINI_API_KEY", c.APIKey)
	c.Model = orDefault(c.Model, "gemini-2.5-flash")
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
}

func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}
