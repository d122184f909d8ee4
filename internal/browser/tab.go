package browser

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/network"
	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/fadilmartias/linkedin-autoapply/internal/config"
)

const (
	defaultActionTimeout = 15 * time.Second
	defaultNavTimeout    = 60 * time.Second
)

// NewAllocator creates a Chrome exec allocator context from the browser config.
func NewAllocator(parent context.Context, cfg config.BrowserConfig) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1440, 900),
	)
	return chromedp.NewExecAllocator(parent, opts...)
}

// Tab is a Page backed by one chromedp target. It is owned by a single run
// and must not be shared between goroutines.
type Tab struct {
	ctx           context.Context
	ActionTimeout time.Duration
	NavTimeout    time.Duration
}

// NewTab starts Chrome and opens the tab. JavaScript dialogs are accepted as
// soon as they open so "leave site?" prompts never block navigation.
func NewTab(parent context.Context, cfg config.BrowserConfig) (*Tab, context.CancelFunc, error) {
	allocCtx, allocCancel := NewAllocator(parent, cfg)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...interface{}) {
		log.Printf("[chrome] "+format, args...)
	}))
	cancel := func() {
		tabCancel()
		allocCancel()
	}

	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if _, ok := ev.(*cdppage.EventJavascriptDialogOpening); ok {
			go func() {
				if err := chromedp.Run(tabCtx, cdppage.HandleJavaScriptDialog(true)); err != nil {
					log.Printf("⚠ [chrome] accept dialog: %v", err)
				}
			}()
		}
	})

	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("start browser: %w", err)
	}
	return &Tab{ctx: tabCtx, ActionTimeout: defaultActionTimeout, NavTimeout: defaultNavTimeout}, cancel, nil
}

func (t *Tab) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancel := context.WithTimeout(t.ctx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

func (t *Tab) eval(ctx context.Context, script string, res interface{}) error {
	return t.run(ctx, t.ActionTimeout, chromedp.Evaluate(script, res))
}

func (t *Tab) Navigate(ctx context.Context, url string) error {
	if err := t.run(ctx, t.NavTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (t *Tab) URL(ctx context.Context) (string, error) {
	var u string
	if err := t.run(ctx, t.ActionTimeout, chromedp.Location(&u)); err != nil {
		return "", fmt.Errorf("read location: %w", err)
	}
	return u, nil
}

func (t *Tab) SetCookie(ctx context.Context, c Cookie) error {
	return t.run(ctx, t.ActionTimeout, chromedp.ActionFunc(func(ctx context.Context) error {
		return network.SetCookie(c.Name, c.Value).
			WithDomain(c.Domain).
			WithPath(c.Path).
			WithSecure(c.Secure).
			WithSameSite(network.CookieSameSiteNone).
			Do(ctx)
	}))
}

func (t *Tab) WaitVisible(ctx context.Context, sel string, timeout time.Duration) error {
	if err := t.run(ctx, timeout, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrElementNotFound, sel, err)
	}
	return nil
}

func (t *Tab) Visible(ctx context.Context, sel string) (bool, error) {
	var ok bool
	if err := t.eval(ctx, fmt.Sprintf(visibleScript, sel), &ok); err != nil {
		return false, fmt.Errorf("check %s: %w", sel, err)
	}
	return ok, nil
}

func (t *Tab) Count(ctx context.Context, sel string) (int, error) {
	var n int
	script := fmt.Sprintf(`document.querySelectorAll(%q).length`, sel)
	if err := t.eval(ctx, script, &n); err != nil {
		return 0, fmt.Errorf("count %s: %w", sel, err)
	}
	return n, nil
}

func (t *Tab) Text(ctx context.Context, sel string) (string, error) {
	var res struct {
		OK   bool   `json:"ok"`
		Text string `json:"text"`
	}
	if err := t.eval(ctx, fmt.Sprintf(textScript, sel), &res); err != nil {
		return "", fmt.Errorf("read text %s: %w", sel, err)
	}
	if !res.OK {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, sel)
	}
	return res.Text, nil
}

func (t *Tab) FindByText(ctx context.Context, sel, text string) (string, error) {
	var found string
	if err := t.eval(ctx, fmt.Sprintf(findByTextScript, text, sel), &found); err != nil {
		return "", fmt.Errorf("find %s %q: %w", sel, text, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s containing %q", ErrElementNotFound, sel, text)
	}
	return found, nil
}

func (t *Tab) Click(ctx context.Context, sel string) error {
	return t.clickScript(ctx, fmt.Sprintf(clickScript, sel), sel)
}

func (t *Tab) ClickNth(ctx context.Context, sel string, n int) error {
	return t.clickScript(ctx, fmt.Sprintf(clickNthScript, sel, n), fmt.Sprintf("%s[%d]", sel, n))
}

func (t *Tab) clickScript(ctx context.Context, script, what string) error {
	var ok bool
	if err := t.eval(ctx, script, &ok); err != nil {
		return fmt.Errorf("click %s: %w", what, err)
	}
	if !ok {
		return fmt.Errorf("click %s: %w", what, ErrElementNotFound)
	}
	return nil
}

func (t *Tab) Fill(ctx context.Context, sel, value string) error {
	err := t.run(ctx, t.ActionTimeout,
		chromedp.SetValue(sel, "", chromedp.ByQuery),
		chromedp.SendKeys(sel, value, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("fill %s: %w", sel, err)
	}
	return nil
}

func (t *Tab) PressKey(ctx context.Context, key string) error {
	return t.run(ctx, t.ActionTimeout, chromedp.KeyEvent(key))
}

func (t *Tab) SetFiles(ctx context.Context, sel string, paths ...string) error {
	if err := t.run(ctx, t.ActionTimeout, chromedp.SetUploadFiles(sel, paths, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("upload to %s: %w", sel, err)
	}
	return nil
}

func (t *Tab) SelectOption(ctx context.Context, sel, value string) error {
	return t.clickScript(ctx, fmt.Sprintf(selectScript, sel, value), sel)
}

func (t *Tab) ScrollToBottom(ctx context.Context, sel string) error {
	var ok bool
	if err := t.eval(ctx, fmt.Sprintf(scrollScript, sel), &ok); err != nil {
		return fmt.Errorf("scroll %s: %w", sel, err)
	}
	if !ok {
		return fmt.Errorf("scroll %s: %w", sel, ErrElementNotFound)
	}
	return nil
}

func (t *Tab) Screenshot(ctx context.Context, path string) error {
	var buf []byte
	if err := t.run(ctx, t.ActionTimeout, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return os.WriteFile(path, buf, 0o644)
}

func (t *Tab) TextFields(ctx context.Context) ([]Field, error) {
	var fields []Field
	if err := t.eval(ctx, textFieldsScript, &fields); err != nil {
		return nil, fmt.Errorf("scan text fields: %w", err)
	}
	return fields, nil
}

func (t *Tab) RadioGroups(ctx context.Context) ([]RadioGroup, error) {
	var groups []RadioGroup
	if err := t.eval(ctx, radioGroupsScript, &groups); err != nil {
		return nil, fmt.Errorf("scan radio groups: %w", err)
	}
	return groups, nil
}

func (t *Tab) Dropdowns(ctx context.Context) ([]Dropdown, error) {
	var dropdowns []Dropdown
	if err := t.eval(ctx, dropdownsScript, &dropdowns); err != nil {
		return nil, fmt.Errorf("scan dropdowns: %w", err)
	}
	return dropdowns, nil
}

var _ Page = (*Tab)(nil)
