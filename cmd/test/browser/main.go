package main

import (
	"fmt"
	"log"

	"go-linkedin-scraper/internal/browser"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	//create playwright manager
	pm, err := browser.NewPlaywright(true)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	//load saved session cookies, if any
	store := browser.NewSessionStore("storage/cookies.json")
	cookies, ok := store.Load()
	if ok {
		fmt.Printf("✅ Loaded %d cookies\n", len(cookies))
	} else {
		fmt.Println("ℹ️ No saved session, starting with a clean context")
	}

	//create context with cookies
	browserCtx, err := pm.NewContext(cookies)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	if _, err := page.Goto("https://www.linkedin.com/"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page loaded: %s\n", title)
}
