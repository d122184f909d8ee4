// Package browser drives a single Chrome tab. Callers work against Page so the
// LinkedIn flows can be exercised without a browser.
package browser

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/chromedp/kb"
)

var ErrElementNotFound = errors.New("element not found")

const (
	KeyEscape = kb.Escape
	KeyEnter  = kb.Enter
)

// Field is a visible text or number input.
type Field struct {
	Selector string `json:"selector"`
	Label    string `json:"label"`
	Value    string `json:"value"`
}

type Option struct {
	Selector string `json:"selector"`
	Value    string `json:"value"`
	Text     string `json:"text"`
}

// RadioGroup is a fieldset of radio buttons. Option selectors point at the
// clickable label of each choice.
type RadioGroup struct {
	Selector string   `json:"selector"`
	Checked  bool     `json:"checked"`
	Options  []Option `json:"options"`
}

type Dropdown struct {
	Selector string   `json:"selector"`
	Options  []Option `json:"options"`
}

type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
	Secure bool
}

// Page is the set of tab operations the bot needs. Selectors are CSS and
// resolve with querySelector semantics (first match).
type Page interface {
	Navigate(ctx context.Context, url string) error
	URL(ctx context.Context) (string, error)
	SetCookie(ctx context.Context, c Cookie) error

	WaitVisible(ctx context.Context, sel string, timeout time.Duration) error
	Visible(ctx context.Context, sel string) (bool, error)
	Count(ctx context.Context, sel string) (int, error)
	Text(ctx context.Context, sel string) (string, error)
	// FindByText returns a selector for the first visible element matching
	// sel whose text contains text, or ErrElementNotFound.
	FindByText(ctx context.Context, sel, text string) (string, error)

	Click(ctx context.Context, sel string) error
	ClickNth(ctx context.Context, sel string, n int) error
	Fill(ctx context.Context, sel, value string) error
	PressKey(ctx context.Context, key string) error
	SetFiles(ctx context.Context, sel string, paths ...string) error
	SelectOption(ctx context.Context, sel, value string) error
	ScrollToBottom(ctx context.Context, sel string) error
	Screenshot(ctx context.Context, path string) error

	TextFields(ctx context.Context) ([]Field, error)
	RadioGroups(ctx context.Context) ([]RadioGroup, error)
	Dropdowns(ctx context.Context) ([]Dropdown, error)
}
