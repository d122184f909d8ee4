package config

type DBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SSLMode  string `json:"sslmode"`
}

func (c *DBConfig) fromEnv() {
	c.Host = setting("DB_HOST", c.Host)
	c.Port = orDefault(setting("DB_PORT", c.Port), "5432")
	c.User = setting("DB_USER", c.User)
	c.Password = setting("DB_PASSWORD", c.Password)
	c.Name = setting("DB_NAME", c.Name)
	c.SSLMode = orDefault(setting("DB_SSLMODE", c.SSLMode), "disable")
}

// Enabled reports whether a Postgres live store was configured at all.
func (c DBConfig) Enabled() bool {
	return c.Host != "" && c.Name != ""
}
