package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightManager owns the browser process. Each crawl run gets its own
// isolated BrowserContext from NewContext, so concurrent callers never share
// navigation state.
type PlaywrightManager struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	headless bool
}

func NewPlaywright(headless bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	log.Println("🚀 Browser launched.")
	return &PlaywrightManager{
		pw:       pw,
		browser:  browser,
		headless: headless,
	}, nil
}

// NewContext creates a fresh browsing context, optionally pre-loaded with
// session cookies.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctx, err := pm.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := ctx.AddCookies(cookies); err != nil {
			ctx.Close()
			return nil, fmt.Errorf("failed to inject cookies: %w", err)
		}
		log.Printf("🍪 Injected %d cookies into new context", len(cookies))
	}

	return ctx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			return err
		}
	}
	if pm.pw != nil {
		return pm.pw.Stop()
	}
	return nil
}
