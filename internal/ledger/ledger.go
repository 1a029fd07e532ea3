package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go-linkedin-scraper/internal/scraper"
)

// ErrNoLedger is returned by LoadAll when the ledger file has never been
// created. Callers (the API) distinguish this from a read failure.
var ErrNoLedger = errors.New("ledger file does not exist")

// Ledger is the append-only store of every job record ever scraped, kept as
// a single JSON array on disk.
// Mutex is required because API reads can race with a running crawl's write.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Ledger {
	return &Ledger{path: path}
}

// ExistingIDs returns the set of job identifiers already persisted. A
// missing or corrupt file yields an empty set, never an error: both just
// mean a fresh start.
func (l *Ledger) ExistingIDs() map[string]struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make(map[string]struct{})
	for _, record := range l.readAll() {
		if record.JobID != "" {
			ids[record.JobID] = struct{}{}
		}
	}
	return ids
}

// FilterNew retains the candidates whose identifier is not yet in the
// existing set, preserving order.
func FilterNew(candidates []scraper.ListingRef, existing map[string]struct{}) []scraper.ListingRef {
	var fresh []scraper.ListingRef
	for _, ref := range candidates {
		if _, seen := existing[ref.JobID]; !seen {
			fresh = append(fresh, ref)
		}
	}
	return fresh
}

// Append merges new records into the ledger: existing records first and
// unchanged, new ones appended in fetch order. The merged array is written
// to a temp file and renamed into place, so a crash can never leave a
// half-written ledger behind.
func (l *Ledger) Append(records []scraper.JobRecord) error {
	if len(records) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing := l.readAll()
	combined := append(existing, records...)

	data, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "jobs-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	log.Printf("💾 Ledger updated: %d existing + %d new = %d total", len(existing), len(records), len(combined))
	return nil
}

// LoadAll returns every persisted record. Unlike ExistingIDs this does not
// paper over failures: the API needs to tell "never scraped" from "broken".
func (l *Ledger) LoadAll() ([]scraper.JobRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoLedger
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if len(data) == 0 {
		return []scraper.JobRecord{}, nil
	}

	var records []scraper.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}
	if records == nil {
		records = []scraper.JobRecord{}
	}
	return records, nil
}

// readAll is the tolerant read used by the crawl path: absent or corrupt
// files are logged and treated as empty.
func (l *Ledger) readAll() []scraper.JobRecord {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read ledger file: %v", err)
		} else {
			log.Println("📋 No ledger file found. Starting fresh.")
		}
		return nil
	}

	var records []scraper.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("⚠️ Ledger file is corrupt, starting fresh: %v", err)
		return nil
	}
	return records
}
