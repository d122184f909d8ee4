// Package browsertest provides an in-memory browser.Page whose DOM is a set of
// scripted selector states.
package browsertest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
)

// Page answers every query from its maps. A selector is visible when
// Visibles says so, and its count defaults to 1 when visible. Hooks run after
// the matching action so tests can script page transitions.
type Page struct {
	mu sync.Mutex

	CurrentURL string
	Visibles   map[string]bool
	Counts     map[string]int
	Texts      map[string]string
	// ByText maps sel+"|"+text to the selector FindByText should return.
	ByText map[string]string
	Errors map[string]error

	Fields  []browser.Field
	Radios  []browser.RadioGroup
	Selects []browser.Dropdown

	OnClick    map[string]func(p *Page)
	OnNavigate func(p *Page, url string)

	Navigations []string
	Clicks      []string
	Keys        []string
	Filled      map[string]string
	Uploads     map[string][]string
	Selected    map[string]string
	Cookies     []browser.Cookie
	Screenshots []string
}

func New() *Page {
	return &Page{
		Visibles: map[string]bool{},
		Counts:   map[string]int{},
		Texts:    map[string]string{},
		ByText:   map[string]string{},
		Errors:   map[string]error{},
		OnClick:  map[string]func(p *Page){},
		Filled:   map[string]string{},
		Uploads:  map[string][]string{},
		Selected: map[string]string{},
	}
}

func (p *Page) Show(sels ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range sels {
		p.Visibles[s] = true
	}
}

func (p *Page) Hide(sels ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range sels {
		p.Visibles[s] = false
	}
}

// Fail makes every action on sel return err.
func (p *Page) Fail(sel string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Errors[sel] = err
}

func (p *Page) ClickCount(sel string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.Clicks {
		if c == sel {
			n++
		}
	}
	return n
}

func (p *Page) KeyCount(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, k := range p.Keys {
		if k == key {
			n++
		}
	}
	return n
}

func (p *Page) Navigate(_ context.Context, url string) error {
	p.mu.Lock()
	if err := p.Errors[url]; err != nil {
		p.mu.Unlock()
		return err
	}
	p.Navigations = append(p.Navigations, url)
	p.CurrentURL = url
	hook := p.OnNavigate
	p.mu.Unlock()
	if hook != nil {
		hook(p, url)
	}
	return nil
}

func (p *Page) URL(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.CurrentURL, nil
}

func (p *Page) SetCookie(_ context.Context, c browser.Cookie) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Cookies = append(p.Cookies, c)
	return nil
}

func (p *Page) WaitVisible(ctx context.Context, sel string, _ time.Duration) error {
	ok, err := p.Visible(ctx, sel)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", browser.ErrElementNotFound, sel)
	}
	return nil
}

func (p *Page) Visible(_ context.Context, sel string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return false, err
	}
	return p.Visibles[sel], nil
}

func (p *Page) Count(_ context.Context, sel string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return 0, err
	}
	if n, ok := p.Counts[sel]; ok {
		return n, nil
	}
	if p.Visibles[sel] {
		return 1, nil
	}
	return 0, nil
}

func (p *Page) Text(_ context.Context, sel string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return "", err
	}
	text, ok := p.Texts[sel]
	if !ok {
		return "", fmt.Errorf("%w: %s", browser.ErrElementNotFound, sel)
	}
	return text, nil
}

func (p *Page) FindByText(_ context.Context, sel, text string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	found, ok := p.ByText[sel+"|"+text]
	if !ok || !p.Visibles[found] {
		return "", fmt.Errorf("%w: %s containing %q", browser.ErrElementNotFound, sel, text)
	}
	return found, nil
}

func (p *Page) Click(_ context.Context, sel string) error {
	return p.click(sel)
}

func (p *Page) ClickNth(_ context.Context, sel string, n int) error {
	return p.click(fmt.Sprintf("%s[%d]", sel, n))
}

func (p *Page) click(key string) error {
	p.mu.Lock()
	if err := p.Errors[key]; err != nil {
		p.mu.Unlock()
		return err
	}
	p.Clicks = append(p.Clicks, key)
	hook := p.OnClick[key]
	p.mu.Unlock()
	if hook != nil {
		hook(p)
	}
	return nil
}

func (p *Page) Fill(_ context.Context, sel, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return err
	}
	p.Filled[sel] = value
	for i := range p.Fields {
		if p.Fields[i].Selector == sel {
			p.Fields[i].Value = value
		}
	}
	return nil
}

func (p *Page) PressKey(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Keys = append(p.Keys, key)
	return nil
}

func (p *Page) SetFiles(_ context.Context, sel string, paths ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return err
	}
	p.Uploads[sel] = paths
	return nil
}

func (p *Page) SelectOption(_ context.Context, sel, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Errors[sel]; err != nil {
		return err
	}
	p.Selected[sel] = value
	return nil
}

func (p *Page) ScrollToBottom(_ context.Context, sel string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Errors[sel]
}

func (p *Page) Screenshot(_ context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Screenshots = append(p.Screenshots, path)
	return nil
}

func (p *Page) TextFields(context.Context) ([]browser.Field, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]browser.Field(nil), p.Fields...), nil
}

func (p *Page) RadioGroups(context.Context) ([]browser.RadioGroup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]browser.RadioGroup(nil), p.Radios...), nil
}

func (p *Page) Dropdowns(context.Context) ([]browser.Dropdown, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]browser.Dropdown(nil), p.Selects...), nil
}

var _ browser.Page = (*Page)(nil)
