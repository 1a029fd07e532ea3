package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/crawler"
	"go-linkedin-scraper/internal/ledger"
	"go-linkedin-scraper/internal/runs"
	"go-linkedin-scraper/internal/scraper/linkedin"
)

func main() {
	keywords := flag.String("keywords", "php", "search keywords")
	location := flag.String("location", "Brasil", "search location")
	flag.Parse()

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. MaxPages: %d, JobsPerPage: %d, TimePeriod: %s", cfg.MaxPages, cfg.JobsPerPage, cfg.TimePeriod)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting LinkedIn job scraper...")

	//init playwright manager
	manager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer manager.Close()

	session := browser.NewSessionStore(cfg.CookiesPath)
	extractor := linkedin.NewLinkedInScraper(cfg, session)
	store := ledger.New(cfg.LedgerPath)
	registry := runs.NewRegistry()

	orchestrator := crawler.New(cfg, manager, extractor, store, registry, nil)
	if err := orchestrator.Run(ctx, *keywords, *location); err != nil {
		log.Printf("❌ Crawl failed: %v", err)
	}

	log.Println("🏁 Execution finished.")
}
