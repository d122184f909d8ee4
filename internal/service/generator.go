package service

import (
	"context"
	"errors"
)

var ErrGenerationUnavailable = errors.New("text generation unavailable")

// TextGenerator turns a prompt into plain text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var ErrSourceUnreadable = errors.New("source document unreadable")
