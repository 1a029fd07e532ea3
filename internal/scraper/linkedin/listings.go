package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-linkedin-scraper/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

const (
	listingContainerSelector = "div[data-job-id]"
	listingLinkSelector      = "a.job-card-container__link"
	detailPathMarker         = "/jobs/view/"
)

// ExtractListings collects (jobId, url) pairs from one search-result page.
// Items missing either field are dropped; order follows the rendered page.
func (s *LinkedInScraper) ExtractListings(ctx context.Context, page playwright.Page, searchURL string) ([]scraper.ListingRef, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Printf("🌐 Visiting search page: %s", searchURL)
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("failed to load search page: %w", err)
	}

	//the page may legitimately have zero results, so a timeout here is a
	//warning, not an error
	if _, err := page.WaitForSelector(listingLinkSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(markerWaitTimeout.Milliseconds())),
	}); err != nil {
		log.Println("⚠️ Job cards not found within timeout. Page may be empty.")
	}

	containers, err := page.Locator(listingContainerSelector).All()
	if err != nil {
		return nil, fmt.Errorf("failed to query job containers: %w", err)
	}

	var refs []scraper.ListingRef
	for _, container := range containers {
		jobID, err := container.GetAttribute("data-job-id")
		if err != nil || jobID == "" {
			continue
		}

		link := container.Locator(listingLinkSelector).First()
		href, err := link.GetAttribute("href")
		if err != nil || href == "" {
			continue
		}
		if !strings.HasPrefix(href, "http") {
			href = "https://www.linkedin.com" + href
		}
		if !strings.Contains(href, detailPathMarker) {
			continue
		}

		refs = append(refs, scraper.ListingRef{JobID: jobID, URL: href})
	}

	log.Printf("📄 Found %d listings on page.", len(refs))
	return refs, nil
}
