package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/config"
)

type SessionState int

const (
	LoggedOut SessionState = iota
	SessionRestored
	Authenticated
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case SessionRestored:
		return "session-restored"
	case Authenticated:
		return "authenticated"
	case SessionFailed:
		return "failed"
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// Session establishes the authenticated browsing session. It owns the page
// for the duration of the run.
type Session struct {
	page   browser.Page
	creds  config.LinkedInConfig
	timing Timing
	state  SessionState
}

func NewSession(page browser.Page, creds config.LinkedInConfig, timing Timing) *Session {
	return &Session{page: page, creds: creds, timing: timing}
}

func (s *Session) State() SessionState {
	return s.state
}

// Login restores the session cookie when one is configured and falls back to
// the credential form. A CAPTCHA or 2FA prompt gets a window for a human to
// clear it.
func (s *Session) Login(ctx context.Context) error {
	if s.creds.HasSessionCookie() {
		log.Println("▶ [session] restoring session cookie")
		err := s.page.SetCookie(ctx, browser.Cookie{
			Name:   SessionCookieName,
			Value:  s.creds.SessionCookie,
			Domain: SessionCookieDomain,
			Path:   "/",
			Secure: true,
		})
		if err != nil {
			log.Printf("⚠ [session] set cookie: %v", err)
		}
	}

	if err := s.page.Navigate(ctx, FeedURL); err != nil {
		log.Printf("⚠ [session] open feed: %v", err)
	}
	_ = pause(ctx, s.timing.NavSettle)

	if s.authenticated(ctx) {
		if s.creds.HasSessionCookie() {
			s.state = SessionRestored
		} else {
			s.state = Authenticated
		}
		log.Printf("✓ [session] %s", s.state)
		return nil
	}

	if !s.creds.HasCredentials() {
		s.state = SessionFailed
		return fmt.Errorf("%w: session not restored and no credentials configured", ErrAuthentication)
	}

	log.Println("▶ [session] logging in with credentials")
	if err := s.submitCredentials(ctx); err != nil {
		s.state = SessionFailed
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	if waitUntil(ctx, s.timing.LoginTimeout, s.timing.PollInterval, func() bool { return s.authenticated(ctx) }) {
		s.state = Authenticated
		log.Printf("✓ [session] %s", s.state)
		return nil
	}

	if s.challenged(ctx) {
		log.Printf("⚠ [session] CAPTCHA/2FA detected, waiting up to %v for manual resolution", s.timing.ManualLoginWait)
	} else {
		log.Printf("⚠ [session] feed not reached, waiting up to %v", s.timing.ManualLoginWait)
	}
	if waitUntil(ctx, s.timing.ManualLoginWait, s.timing.PollInterval, func() bool { return s.authenticated(ctx) }) {
		s.state = Authenticated
		log.Printf("✓ [session] %s", s.state)
		return nil
	}

	s.state = SessionFailed
	return fmt.Errorf("%w: feed not reached after login", ErrAuthentication)
}

func (s *Session) submitCredentials(ctx context.Context) error {
	if err := s.page.Navigate(ctx, LoginURL); err != nil {
		return err
	}
	if err := s.page.Fill(ctx, SelUsername, s.creds.Email); err != nil {
		return err
	}
	if err := s.page.Fill(ctx, SelPassword, s.creds.Password); err != nil {
		return err
	}
	return s.page.Click(ctx, SelLoginSubmit)
}

// authenticated reports whether the page shows the logged-in layout.
func (s *Session) authenticated(ctx context.Context) bool {
	if n, err := s.page.Count(ctx, SelGlobalSearch); err == nil && n > 0 {
		return true
	}
	u, err := s.page.URL(ctx)
	return err == nil && strings.HasPrefix(u, FeedURL)
}

func (s *Session) challenged(ctx context.Context) bool {
	if ok, err := s.page.Visible(ctx, SelChallenge); err == nil && ok {
		return true
	}
	u, err := s.page.URL(ctx)
	return err == nil && strings.Contains(u, "/checkpoint/")
}
