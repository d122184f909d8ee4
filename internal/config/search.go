package config

import "strings"

type SearchConfig struct {
	Keywords              []string `json:"keywords"`
	Location              string   `json:"location"`
	DailyApplicationLimit *int     `json:"daily_application_limit"`
}

func (c *SearchConfig) defaults() {
	keywords := c.Keywords[:0]
	for _, k := range c.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	c.Keywords = keywords
	if len(c.Keywords) == 0 {
		c.Keywords = []string{"Java"}
	}
	c.Location = orDefault(c.Location, "Remote")
	if c.DailyApplicationLimit == nil || *c.DailyApplicationLimit < 0 {
		limit := 50
		c.DailyApplicationLimit = &limit
	}
}

func (c SearchConfig) Limit() int {
	if c.DailyApplicationLimit == nil {
		return 0
	}
	return *c.DailyApplicationLimit
}
