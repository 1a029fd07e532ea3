// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//LinkedIn account credentials
	LinkedInEmail    string `yaml:"linkedin_email" env:"LINKEDIN_EMAIL"`
	LinkedInPassword string `yaml:"linkedin_password" env:"LINKEDIN_PASSWORD"`

	//Search criteria
	MaxPages    int    `yaml:"max_pages" env:"MAX_PAGES"`
	JobsPerPage int    `yaml:"jobs_per_page" env:"JOBS_PER_PAGE"`
	TimePeriod  string `yaml:"time_period" env:"TIME_PERIOD"`

	//Crawl throttle: how many job details to fetch per run
	DetailLimit int `yaml:"detail_limit" env:"DETAIL_LIMIT"`
	//Settle delay for the external-apply flow (seconds)
	SettleDelaySeconds int `yaml:"settle_delay_seconds" env:"SETTLE_DELAY_SECONDS"`

	//Paths
	CookiesPath string `yaml:"cookies_path" env:"COOKIES_PATH"`
	LedgerPath  string `yaml:"ledger_path" env:"LEDGER_PATH"`

	//Browser
	Headless bool `yaml:"headless" env:"HEADLESS"`

	//HTTP server
	Port string `yaml:"port" env:"PORT"`

	//Optional Telegram notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{Headless: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if email := os.Getenv("LINKEDIN_EMAIL"); email != "" {
		cfg.LinkedInEmail = email
	}
	if password := os.Getenv("LINKEDIN_PASSWORD"); password != "" {
		cfg.LinkedInPassword = password
	}
	if v := os.Getenv("MAX_PAGES"); v != "" {
		cfg.MaxPages = parseIntEnv("MAX_PAGES", v)
	}
	if v := os.Getenv("JOBS_PER_PAGE"); v != "" {
		cfg.JobsPerPage = parseIntEnv("JOBS_PER_PAGE", v)
	}
	if v := os.Getenv("TIME_PERIOD"); v != "" {
		cfg.TimePeriod = v
	}
	if v := os.Getenv("DETAIL_LIMIT"); v != "" {
		cfg.DetailLimit = parseIntEnv("DETAIL_LIMIT", v)
	}
	if v := os.Getenv("SETTLE_DELAY_SECONDS"); v != "" {
		cfg.SettleDelaySeconds = parseIntEnv("SETTLE_DELAY_SECONDS", v)
	}
	if v := os.Getenv("COOKIES_PATH"); v != "" {
		cfg.CookiesPath = v
	}
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.LedgerPath = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("Invalid HEADLESS: %v", err)
		}
		cfg.Headless = headless
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	if cfg.JobsPerPage <= 0 {
		cfg.JobsPerPage = 25
	}
	if cfg.TimePeriod == "" {
		cfg.TimePeriod = "any"
	}
	if cfg.DetailLimit <= 0 {
		cfg.DetailLimit = 5
	}
	if cfg.SettleDelaySeconds <= 0 {
		cfg.SettleDelaySeconds = 3
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = "storage/cookies.json"
	}
	if cfg.LedgerPath == "" {
		cfg.LedgerPath = "storage/jobs.json"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//Validate required fields
	if cfg.LinkedInEmail == "" {
		log.Fatal("LINKEDIN_EMAIL is required")
	}
	if cfg.LinkedInPassword == "" {
		log.Fatal("LINKEDIN_PASSWORD is required")
	}

	return cfg
}

// SettleDelay returns the external-apply settle interval as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelaySeconds) * time.Second
}

func parseIntEnv(name, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", name, err)
	}
	return n
}
