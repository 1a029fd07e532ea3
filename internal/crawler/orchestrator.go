package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/ledger"
	"go-linkedin-scraper/internal/runs"
	"go-linkedin-scraper/internal/scraper"
	"go-linkedin-scraper/internal/search"

	"github.com/playwright-community/playwright-go"
)

// ErrRunInProgress is returned when a crawl is triggered while another run
// holds the browser.
var ErrRunInProgress = errors.New("a crawl run is already in progress")

//upper bound for a whole run, matching the sequential page budget
const runTimeout = 10 * time.Minute

// Notifier receives newly persisted records. Implemented by the Telegram
// bot; nil disables notifications.
type Notifier interface {
	NotifyRecord(record scraper.JobRecord) error
	NotifyStatus(message string) error
}

// Orchestrator composes the crawl pipeline: authenticate, expand the paged
// search, extract listings, dedupe against the ledger, fetch a capped number
// of details and persist them. One run at a time; each run gets its own
// isolated browser context.
type Orchestrator struct {
	cfg       *config.Config
	manager   *browser.PlaywrightManager
	extractor scraper.Extractor
	store     *ledger.Ledger
	registry  *runs.Registry
	notifier  Notifier

	running sync.Mutex
}

func New(cfg *config.Config, manager *browser.PlaywrightManager, extractor scraper.Extractor, store *ledger.Ledger, registry *runs.Registry, notifier Notifier) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		manager:   manager,
		extractor: extractor,
		store:     store,
		registry:  registry,
		notifier:  notifier,
	}
}

// Trigger starts a crawl in the background and returns its run id
// immediately. A second trigger while a run is in flight gets
// ErrRunInProgress instead of sharing browser state.
func (o *Orchestrator) Trigger(keywords, location string) (string, error) {
	if !o.running.TryLock() {
		return "", ErrRunInProgress
	}

	runID := o.registry.Create(keywords, location)
	go func() {
		defer o.running.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := o.execute(ctx, runID, keywords, location); err != nil {
			//run-fatal but process-surviving: the server keeps serving
			log.Printf("❌ Crawl run %s failed: %v", runID, err)
		}
	}()

	return runID, nil
}

// Run executes a crawl synchronously (the CLI path).
func (o *Orchestrator) Run(ctx context.Context, keywords, location string) error {
	if !o.running.TryLock() {
		return ErrRunInProgress
	}
	defer o.running.Unlock()

	runID := o.registry.Create(keywords, location)
	return o.execute(ctx, runID, keywords, location)
}

// execute owns the run's browser context lifecycle and run-state record.
func (o *Orchestrator) execute(ctx context.Context, runID, keywords, location string) error {
	o.registry.MarkRunning(runID)

	browserCtx, err := o.manager.NewContext(nil)
	if err != nil {
		o.registry.MarkFailed(runID, err)
		return err
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		o.registry.MarkFailed(runID, err)
		return fmt.Errorf("failed to create page: %w", err)
	}

	if err := o.crawl(ctx, runID, page, keywords, location); err != nil {
		o.registry.MarkFailed(runID, err)
		return err
	}
	return nil
}

// crawl runs the pipeline against an already-created page. Split out from
// execute so the pipeline logic is testable with a fake extractor.
func (o *Orchestrator) crawl(ctx context.Context, runID string, page playwright.Page, keywords, location string) error {
	log.Printf("🚀 Starting crawl: keywords=%q location=%q", keywords, location)

	//1. authenticate once per run
	if err := o.extractor.EnsureLoggedIn(ctx, page); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	//2. expand the paged search
	spec := search.Spec{
		BaseURL:  search.DefaultBaseURL,
		Keywords: keywords,
		Location: location,
	}.WithTimePeriod(o.cfg.TimePeriod)

	pageURLs := search.ExpandPagination(spec, o.cfg.MaxPages, o.cfg.JobsPerPage)
	if len(pageURLs) == 0 {
		log.Println("ℹ️ Zero pages configured. Nothing to crawl.")
		o.registry.MarkSucceeded(runID, 0, 0, 0)
		return nil
	}

	//3. listings across all pages, sequentially
	var listings []scraper.ListingRef
	for _, pageURL := range pageURLs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		refs, err := o.extractor.ExtractListings(ctx, page, pageURL)
		if err != nil {
			return fmt.Errorf("listing extraction failed: %w", err)
		}
		listings = append(listings, refs...)
	}
	log.Printf("📦 Total listings collected: %d", len(listings))

	//4. dedupe against the ledger and cap detail fetches
	existing := o.store.ExistingIDs()
	fresh := ledger.FilterNew(listings, existing)
	log.Printf("🔍 Deduplication: %d total -> %d new", len(listings), len(fresh))

	capped := fresh
	if len(capped) > o.cfg.DetailLimit {
		capped = capped[:o.cfg.DetailLimit]
		log.Printf("✂️ Capped detail fetches to %d", o.cfg.DetailLimit)
	}

	//5. fetch details sequentially, one shared timestamp per run
	scrapedAt := time.Now().UTC()
	var records []scraper.JobRecord
	for _, ref := range capped {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		detail, err := o.extractor.ExtractDetails(ctx, page, ref.URL)
		if err != nil {
			return fmt.Errorf("detail extraction failed for %s: %w", ref.JobID, err)
		}
		records = append(records, scraper.JobRecord{
			JobID:           ref.JobID,
			Title:           detail.Title,
			Company:         detail.Company,
			Description:     detail.Description,
			URL:             detail.URL,
			ApplicationType: detail.ApplicationType,
			ExternalURL:     detail.ExternalURL,
			ScrapedAt:       scrapedAt,
		})
	}

	//6. persist and notify
	if len(records) > 0 {
		if err := o.store.Append(records); err != nil {
			return fmt.Errorf("failed to persist records: %w", err)
		}
		o.notify(records)
	} else {
		log.Println("ℹ️ No new jobs scraped this run.")
	}

	o.registry.MarkSucceeded(runID, len(listings), len(fresh), len(records))
	log.Printf("🏁 Crawl finished: %d saved.", len(records))
	return nil
}

// notify forwards persisted records to the notifier; delivery failures are
// logged, never fatal.
func (o *Orchestrator) notify(records []scraper.JobRecord) {
	if o.notifier == nil {
		return
	}
	for _, record := range records {
		if err := o.notifier.NotifyRecord(record); err != nil {
			log.Printf("⚠️ Failed to send notification: %v", err)
		}
	}
	status := fmt.Sprintf("✅ Scraped %d new jobs.", len(records))
	if err := o.notifier.NotifyStatus(status); err != nil {
		log.Printf("⚠️ Failed to send status notification: %v", err)
	}
}
