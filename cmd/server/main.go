package main

import (
	"log"

	"go-linkedin-scraper/internal/api"
	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/crawler"
	"go-linkedin-scraper/internal/ledger"
	"go-linkedin-scraper/internal/runs"
	"go-linkedin-scraper/internal/scraper/linkedin"
	"go-linkedin-scraper/internal/telegram"
)

func main() {
	//load config (fatal if credentials are missing)
	cfg := config.Load()

	//init playwright manager, shared across runs
	manager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer manager.Close()

	session := browser.NewSessionStore(cfg.CookiesPath)
	extractor := linkedin.NewLinkedInScraper(cfg, session)
	store := ledger.New(cfg.LedgerPath)
	registry := runs.NewRegistry()

	//optional Telegram notifications
	var notifier crawler.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram bot: %v", err)
		}
		notifier = bot
		log.Println("🤖 Telegram notifications enabled.")
	}

	orchestrator := crawler.New(cfg, manager, extractor, store, registry, notifier)
	server := api.NewServer(orchestrator, store, registry)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
