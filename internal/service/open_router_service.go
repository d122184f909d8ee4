package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService(cfg config.OpenRouterConfig) (*OpenRouterService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY not set", ErrGenerationUnavailable)
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(90 * time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		client: client,
	}, nil
}

func (s *OpenRouterService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an expert technical recruiter and resume writer."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("call openrouter: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode(), msg)
	}

	text := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if text == "" {
		return "", fmt.Errorf("%w: no response from LLM", ErrGenerationUnavailable)
	}
	return text, nil
}
