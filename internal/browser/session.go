package browser

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

// SessionStore persists authentication cookies so a crawl can reuse a
// logged-in session instead of submitting credentials every run.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the cookie file. A missing or unparseable file is not an error,
// it just means there is no session to restore.
func (s *SessionStore) Load() ([]playwright.OptionalCookie, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("🍪 Cookie file not found. Proceeding with login.")
		} else {
			log.Printf("⚠️ Failed to read cookie file: %v", err)
		}
		return nil, false
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		log.Printf("⚠️ Failed to parse cookie file: %v", err)
		return nil, false
	}

	if len(cookies) == 0 {
		return nil, false
	}

	pwCookies := make([]playwright.OptionalCookie, len(cookies))
	for i, c := range cookies {
		pwCookies[i] = c.ToPlaywright()
	}
	return pwCookies, true
}

// Save writes the context's current cookies to disk. A write failure is
// logged and returned but is never fatal to the crawl: the in-memory session
// stays valid either way.
func (s *SessionStore) Save(cookies []playwright.Cookie) error {
	stored := make([]Cookie, len(cookies))
	for i, c := range cookies {
		stored[i] = FromPlaywright(c)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal cookies: %v", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("⚠️ Failed to create cookie directory: %v", err)
		return err
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		log.Printf("⚠️ Failed to write cookie file: %v", err)
		return err
	}

	log.Printf("💾 Session saved (%d cookies)", len(stored))
	return nil
}
