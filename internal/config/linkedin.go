package config

type LinkedInConfig struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	SessionCookie string `json:"session_cookie"`
}

func (c *LinkedInConfig) fromEnv() {
	c.Email = setting("LINKEDIN_EMAIL", c.Email)
	c.Password = setting("LINKEDIN_PASSWORD", c.Password)
	c.SessionCookie = setting("LINKEDIN_SESSION_COOKIE", c.SessionCookie)
}

func (c LinkedInConfig) HasSessionCookie() bool {
	return c.SessionCookie != ""
}

func (c LinkedInConfig) HasCredentials() bool {
	return c.Email != "" && c.Password != ""
}
