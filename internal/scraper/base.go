// Shared types for the crawl pipeline
// Ensure consistency between extractors, ledger and orchestrator

package scraper

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ApplicationType classifies how a job posting accepts applications.
type ApplicationType string

const (
	ApplyDirect   ApplicationType = "direct-apply"
	ApplyExternal ApplicationType = "external-apply"
	ApplyUnknown  ApplicationType = "unknown"
)

// ListingRef is one search result: the job's natural identifier plus its
// detail-page URL. Both fields are always non-empty; extractors drop
// incomplete items before they enter the pipeline.
type ListingRef struct {
	JobID string `json:"jobId"`
	URL   string `json:"url"`
}

// JobDetail is what a detail-page extraction produces, before the
// orchestrator stamps it with the listing's identifier and the run timestamp.
type JobDetail struct {
	Title           string
	Company         string
	Description     string
	URL             string
	ApplicationType ApplicationType
	//ExternalURL is only set for external-apply postings; nil otherwise
	ExternalURL *string
}

// JobRecord is the persisted form of a posting. Immutable once written.
type JobRecord struct {
	JobID           string          `json:"jobId"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	ApplicationType ApplicationType `json:"applicationType"`
	ExternalURL     *string         `json:"externalUrl"`
	ScrapedAt       time.Time       `json:"scrapedAt"`
}

//Extractor defines the page operations a crawl run needs from a platform
type Extractor interface {
	//EnsureLoggedIn establishes an authenticated session on the page
	EnsureLoggedIn(ctx context.Context, page playwright.Page) error

	//ExtractListings collects listing refs from one search-result page
	ExtractListings(ctx context.Context, page playwright.Page, searchURL string) ([]ListingRef, error)

	//ExtractDetails fetches one posting's detail record
	ExtractDetails(ctx context.Context, page playwright.Page, jobURL string) (*JobDetail, error)

	//Name is the platform name
	Name() string
}
