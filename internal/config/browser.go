package config

import "time"

type BrowserConfig struct {
	Headless  bool   `json:"headless"`
	UserAgent string `json:"user_agent"`
	// Seconds to wait for a human to clear a CAPTCHA or 2FA prompt.
	ManualLoginWait int `json:"manual_login_wait"`
}

func (c *BrowserConfig) defaults() {
	c.UserAgent = orDefault(c.UserAgent,
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	if c.ManualLoginWait <= 0 {
		c.ManualLoginWait = 30
	}
}

func (c BrowserConfig) ManualWait() time.Duration {
	return time.Duration(c.ManualLoginWait) * time.Second
}
