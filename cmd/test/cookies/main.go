package main

import (
	"fmt"
	"log"

	"go-linkedin-scraper/internal/browser"
)

func main() {
	fmt.Println("🍪 Testing cookie loading...")

	store := browser.NewSessionStore("storage/cookies.json")
	cookies, ok := store.Load()
	if !ok {
		log.Fatal("No session found (missing, corrupt or empty cookie file)")
	}

	fmt.Printf("✅ Loaded %d cookies\n", len(cookies))

	//Print first cookie as example
	if len(cookies) > 0 {
		c := cookies[0]
		fmt.Printf("\nExample cookie:\n")
		fmt.Printf("Name: %s\n", c.Name)
		if c.Domain != nil {
			fmt.Printf("Domain: %s\n", *c.Domain)
		}
		if c.Secure != nil {
			fmt.Printf("Secure: %t\n", *c.Secure)
		}
	}
}
