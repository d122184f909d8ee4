package config

type FirebaseConfig struct {
	CertPath   string `json:"cert_path"`
	Collection string `json:"collection"`
}

func (c *FirebaseConfig) fromEnv() {
	c.CertPath = setting("FIREBASE_CERT_PATH", c.CertPath)
	c.Collection = orDefault(c.Collection, "applications")
}

func (c FirebaseConfig) Enabled() bool {
	return c.CertPath != ""
}
