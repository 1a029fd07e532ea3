package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-linkedin-scraper/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "jobs.json"))
}

func record(id string) scraper.JobRecord {
	return scraper.JobRecord{
		JobID:           id,
		Title:           "Backend Developer",
		Company:         "Acme",
		Description:     "N/A",
		URL:             "https://www.linkedin.com/jobs/view/" + id,
		ApplicationType: scraper.ApplyDirect,
		ScrapedAt:       time.Now().UTC(),
	}
}

func TestFilterNew(t *testing.T) {
	existing := map[string]struct{}{"A": {}, "B": {}}
	candidates := []scraper.ListingRef{
		{JobID: "A", URL: "https://example.com/a"},
		{JobID: "C", URL: "https://example.com/c"},
		{JobID: "B", URL: "https://example.com/b"},
		{JobID: "D", URL: "https://example.com/d"},
	}

	fresh := FilterNew(candidates, existing)

	require.Len(t, fresh, 2)
	assert.Equal(t, "C", fresh[0].JobID)
	assert.Equal(t, "D", fresh[1].JobID)
}

func TestExistingIDsMissingFile(t *testing.T) {
	l := tempLedger(t)
	assert.Empty(t, l.ExistingIDs())
}

func TestExistingIDsCorruptFile(t *testing.T) {
	l := tempLedger(t)
	require.NoError(t, os.WriteFile(l.path, []byte(`"not an array"`), 0644))

	assert.Empty(t, l.ExistingIDs())
}

func TestExistingIDsSkipsRecordsWithoutID(t *testing.T) {
	l := tempLedger(t)
	require.NoError(t, l.Append([]scraper.JobRecord{record("1"), {Title: "no id"}, record("2")}))

	ids := l.ExistingIDs()
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, "1")
	assert.Contains(t, ids, "2")
}

func TestAppendNeverDropsExisting(t *testing.T) {
	l := tempLedger(t)
	first := []scraper.JobRecord{record("1"), record("2"), record("3")}
	require.NoError(t, l.Append(first))

	second := []scraper.JobRecord{record("4"), record("5")}
	require.NoError(t, l.Append(second))

	all, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 5)

	//existing records come first, unchanged and in order
	for i, want := range first {
		assert.Equal(t, want.JobID, all[i].JobID)
	}
	assert.Equal(t, "4", all[3].JobID)
	assert.Equal(t, "5", all[4].JobID)
}

func TestAppendRecoversFromCorruptFile(t *testing.T) {
	l := tempLedger(t)
	require.NoError(t, os.WriteFile(l.path, []byte("{{{ not json"), 0644))

	require.NoError(t, l.Append([]scraper.JobRecord{record("9")}))

	all, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "9", all[0].JobID)
}

func TestAppendLeavesNoTempFiles(t *testing.T) {
	l := tempLedger(t)
	require.NoError(t, l.Append([]scraper.JobRecord{record("1")}))

	entries, err := os.ReadDir(filepath.Dir(l.path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jobs.json", entries[0].Name())
}

func TestAppendEmptyBatchIsNoOp(t *testing.T) {
	l := tempLedger(t)
	require.NoError(t, l.Append(nil))

	_, err := l.LoadAll()
	assert.ErrorIs(t, err, ErrNoLedger)
}

func TestLoadAllDistinguishesMissingFromEmpty(t *testing.T) {
	l := tempLedger(t)

	_, err := l.LoadAll()
	assert.ErrorIs(t, err, ErrNoLedger)

	require.NoError(t, os.WriteFile(l.path, []byte("[]"), 0644))
	all, err := l.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAppendWritesValidJSON(t *testing.T) {
	l := tempLedger(t)
	ext := "https://careers.example.com/apply"
	rec := record("7")
	rec.ApplicationType = scraper.ApplyExternal
	rec.ExternalURL = &ext
	require.NoError(t, l.Append([]scraper.JobRecord{rec}))

	data, err := os.ReadFile(l.path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "external-apply", decoded[0]["applicationType"])
	assert.Equal(t, ext, decoded[0]["externalUrl"])
}
