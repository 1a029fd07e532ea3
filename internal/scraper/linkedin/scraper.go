package linkedin

import (
	"time"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/utils"
)

const (
	feedURL  = "https://www.linkedin.com/feed/"
	loginURL = "https://www.linkedin.com/login"

	//element that only renders for a logged-in user
	loggedInMarker = "#global-nav"

	sessionProbeTimeout = 10 * time.Second
	loginConfirmTimeout = 30 * time.Second
	markerWaitTimeout   = 10 * time.Second
)

type LinkedInScraper struct {
	cfg     *config.Config
	session *browser.SessionStore
	shots   *utils.ScreenShotDebugger
	settle  time.Duration
}

func NewLinkedInScraper(cfg *config.Config, session *browser.SessionStore) *LinkedInScraper {
	return &LinkedInScraper{
		cfg:     cfg,
		session: session,
		shots:   utils.NewScreenShotDebugger(),
		settle:  cfg.SettleDelay(),
	}
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}
