package linkedin

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

// EnsureLoggedIn establishes an authenticated session on the page. A stored
// session is tried first; if its probe fails the scraper falls back to a
// credential login and saves the fresh cookies.
func (s *LinkedInScraper) EnsureLoggedIn(ctx context.Context, page playwright.Page) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	//1. try the saved session
	if cookies, ok := s.session.Load(); ok {
		if err := page.Context().AddCookies(cookies); err != nil {
			log.Printf("⚠️ Failed to inject saved cookies: %v", err)
		} else {
			log.Println("🍪 Session cookies loaded. Verifying...")
			if s.probeLoggedIn(page, sessionProbeTimeout) {
				log.Println("✅ Saved session is valid. Skipping login.")
				return nil
			}
			log.Println("⚠️ Saved session is invalid or expired. Proceeding with login.")
		}
	}

	//2. credential login
	log.Println("🔑 Navigating to LinkedIn login page...")
	if _, err := page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	if err := page.Fill("#username", s.cfg.LinkedInEmail); err != nil {
		return fmt.Errorf("failed to fill username: %w", err)
	}
	if err := page.Fill("#password", s.cfg.LinkedInPassword); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}

	log.Println("🔑 Submitting credentials...")
	if err := page.Click(".login__form_action_container button"); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}

	//3. wait for post-login confirmation (longer bound than the probe)
	if _, err := page.WaitForSelector(loggedInMarker, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(loginConfirmTimeout.Milliseconds())),
	}); err != nil {
		//could be a CAPTCHA or rejected credentials; the screenshot is the
		//only way to tell which
		s.shots.CaptureAndLog(page, "login-error", "🚨 LinkedIn: login confirmation not found")
		return fmt.Errorf("login failed: post-login marker not found (check for CAPTCHA or bad credentials): %w", err)
	}
	log.Println("✅ Login successful!")

	//4. persist the new session; failure here is not fatal
	cookies, err := page.Context().Cookies()
	if err != nil {
		log.Printf("⚠️ Failed to read cookies after login: %v", err)
		return nil
	}
	if err := s.session.Save(cookies); err != nil {
		log.Printf("⚠️ Session not persisted, continuing anyway: %v", err)
	}
	return nil
}

// probeLoggedIn navigates to the feed and checks for the logged-in marker
// within the given bound.
func (s *LinkedInScraper) probeLoggedIn(page playwright.Page, timeout time.Duration) bool {
	if _, err := page.Goto(feedURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("⚠️ Failed to load feed page: %v", err)
		return false
	}

	_, err := page.WaitForSelector(loggedInMarker, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}
