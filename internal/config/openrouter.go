package config

type OpenRouterConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
	// Extra attempts after a 429/5xx. Zero means one call per listing.
	MaxRetries int `json:"max_retries"`
}

func (c *OpenRouterConfig) fromEnv() {
	c.APIKey = setting("OPENROUTER_API_KEY", c.APIKey)
	c.Model = orDefault(c.Model, "openai/gpt-4o-mini")
	c.BaseURL = orDefault(c.BaseURL, "https://openrouter.ai/api/v1")
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
}

func (c OpenRouterConfig) Enabled() bool {
	return c.APIKey != ""
}
