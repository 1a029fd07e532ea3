package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"go-linkedin-scraper/internal/scraper"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	titleSelector       = ".t-24.job-details-jobs-unified-top-card__job-title"
	companySelector     = "div.job-details-jobs-unified-top-card__company-name a"
	descriptionSelector = "#job-details .mt4"
	applyButtonSelector = ".jobs-apply-button--top-card"
	applyLabelSelector  = ".jobs-apply-button--top-card .artdeco-button__text"
	applyModalSelector  = ".artdeco-modal"
	modalButtonSelector = ".artdeco-modal .jobs-apply-button"

	fieldMissing = "N/A"
)

// normalizeLabel lower-cases and strips accents so localized button labels
// still match the known tokens.
func normalizeLabel(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(strings.TrimSpace(result))
}

// ExtractDetails fetches one posting's detail record. Missing fields degrade
// to "N/A" rather than failing the fetch.
func (s *LinkedInScraper) ExtractDetails(ctx context.Context, page playwright.Page, jobURL string) (*scraper.JobDetail, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Printf("🔎 Visiting job: %s", jobURL)
	if _, err := page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("failed to load job page: %w", err)
	}

	if _, err := page.WaitForSelector(titleSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(markerWaitTimeout.Milliseconds())),
	}); err != nil {
		log.Println("⚠️ Title element not found within timeout.")
	}

	detail := &scraper.JobDetail{
		Title:       s.textOrMissing(page, titleSelector),
		Company:     s.textOrMissing(page, companySelector),
		Description: s.textOrMissing(page, descriptionSelector),
		URL:         page.URL(),
	}

	detail.ApplicationType = s.classifyApplication(page)

	if detail.ApplicationType == scraper.ApplyExternal {
		detail.ExternalURL = s.captureExternalURL(page)
	}

	return detail, nil
}

// textOrMissing reads an element's text, defaulting to "N/A" when the
// element is absent or unreadable.
func (s *LinkedInScraper) textOrMissing(page playwright.Page, selector string) string {
	el := page.Locator(selector).First()
	count, err := el.Count()
	if err != nil || count == 0 {
		return fieldMissing
	}

	text, err := el.InnerText()
	if err != nil {
		return fieldMissing
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fieldMissing
	}
	return text
}

// classifyApplication reads the apply button's label and maps it onto an
// application type. Unrecognized labels are kept for diagnostics only.
func (s *LinkedInScraper) classifyApplication(page playwright.Page) scraper.ApplicationType {
	label := page.Locator(applyLabelSelector).First()
	count, err := label.Count()
	if err != nil || count == 0 {
		return scraper.ApplyUnknown
	}

	text, err := label.InnerText()
	if err != nil {
		return scraper.ApplyUnknown
	}

	switch normalizeLabel(text) {
	case "easy apply":
		return scraper.ApplyDirect
	case "apply":
		return scraper.ApplyExternal
	default:
		log.Printf("⚠️ Unrecognized apply label: %q", strings.TrimSpace(text))
		return scraper.ApplyUnknown
	}
}

// captureExternalURL follows the external-apply flow: click the apply button,
// let a possible confirmation modal through, and if a new tab opened grab its
// URL and close it. Any failure degrades to "N/A" without failing the fetch.
func (s *LinkedInScraper) captureExternalURL(page playwright.Page) *string {
	missing := fieldMissing

	pagesBefore := len(page.Context().Pages())

	if err := page.Click(applyButtonSelector); err != nil {
		log.Printf("⚠️ Failed to click apply button: %v", err)
		return &missing
	}
	time.Sleep(s.settle)

	//a confirmation modal may gate the redirect
	modalCount, _ := page.Locator(applyModalSelector).Count()
	if modalCount > 0 {
		log.Println("🪟 Confirmation modal detected. Clicking continue...")
		if err := page.Click(modalButtonSelector); err != nil {
			log.Printf("⚠️ Failed to click modal continue: %v", err)
		}
		time.Sleep(s.settle)
	}

	pages := page.Context().Pages()
	if len(pages) <= pagesBefore {
		log.Println("⚠️ No new tab opened for external apply.")
		return &missing
	}

	//the external destination is the last-opened tab; close it so tabs
	//don't accumulate across a run
	newPage := pages[len(pages)-1]
	externalURL := newPage.URL()
	if err := newPage.Close(); err != nil {
		log.Printf("⚠️ Failed to close external tab: %v", err)
	}

	log.Printf("🔗 External apply URL: %s", externalURL)
	return &externalURL
}
