package config

type DashboardConfig struct {
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	// API requests allowed per client per minute; 0 falls back to 60.
	RateLimit int `json:"rate_limit_per_minute"`
}

func (c *DashboardConfig) fromEnv() {
	c.Port = orDefault(setting("DASHBOARD_PORT", c.Port), ":8080")
	c.Username = orDefault(c.Username, "admin")
	c.Password = setting("DASHBOARD_PASSWORD", c.Password)
}
