package main

import (
	"fmt"

	"go-linkedin-scraper/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Email: %s\n", cfg.LinkedInEmail)
	fmt.Printf("   Max Pages: %d\n", cfg.MaxPages)
	fmt.Printf("   Jobs Per Page: %d\n", cfg.JobsPerPage)
	fmt.Printf("   Time Period: %s\n", cfg.TimePeriod)
	fmt.Printf("   Detail Limit: %d\n", cfg.DetailLimit)
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Ledger Path: %s\n", cfg.LedgerPath)
	fmt.Printf("   Headless: %t\n", cfg.Headless)
}
