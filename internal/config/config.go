package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrConfigMissing = errors.New("config file missing")

const DefaultPath = "config.json"

// Values shipped in the config template. They mean "not configured".
var placeholders = map[string]bool{
	"YOUR_GEMINI_API_KEY":                   true,
	"YOUR_OPENROUTER_API_KEY":               true,
	"YOUR_EMAIL":                            true,
	"YOUR_PASSWORD":                         true,
	"OPTIONAL_BUT_RECOMMENDED_LI_AT_COOKIE": true,
	"PATH_TO_FIREBASE_CERT_JSON":            true,
}

type Config struct {
	LinkedIn   LinkedInConfig   `json:"linkedin"`
	Search     SearchConfig     `json:"search"`
	Gemini     GeminiConfig     `json:"gemini"`
	OpenRouter OpenRouterConfig `json:"openrouter"`
	Resume     ResumeConfig     `json:"resume"`
	Tracker    TrackerConfig    `json:"tracker"`
	Firebase   FirebaseConfig   `json:"firebase"`
	Database   DBConfig         `json:"database"`
	Browser    BrowserConfig    `json:"browser"`
	Dashboard  DashboardConfig  `json:"dashboard"`
}

// Load reads the config file at path, fills defaults and applies environment
// overrides. A missing file is reported as ErrConfigMissing.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LinkedIn.fromEnv()
	cfg.Search.defaults()
	cfg.Gemini.fromEnv()
	cfg.OpenRouter.fromEnv()
	cfg.Resume.defaults()
	cfg.Tracker.defaults()
	cfg.Firebase.fromEnv()
	cfg.Database.fromEnv()
	cfg.Browser.defaults()
	cfg.Dashboard.fromEnv()
	return &cfg, nil
}

// setting returns the env value for key when present, else current. Template
// placeholders collapse to "".
func setting(key, current string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		current = v
	}
	current = strings.TrimSpace(current)
	if placeholders[current] {
		return ""
	}
	return current
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
