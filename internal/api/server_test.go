package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-linkedin-scraper/internal/crawler"
	"go-linkedin-scraper/internal/ledger"
	"go-linkedin-scraper/internal/runs"
	"go-linkedin-scraper/internal/scraper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrigger struct {
	err      error
	keywords string
	location string
}

func (f *fakeTrigger) Trigger(keywords, location string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keywords = keywords
	f.location = location
	return "run-123", nil
}

func newTestServer(t *testing.T, trigger Trigger) (*gin.Engine, *ledger.Ledger, *runs.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := ledger.New(filepath.Join(t.TempDir(), "jobs.json"))
	registry := runs.NewRegistry()
	return NewServer(trigger, store, registry).Router(), store, registry
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScrapeRequiresParams(t *testing.T) {
	router, _, _ := newTestServer(t, &fakeTrigger{})

	tests := []struct {
		name string
		body string
	}{
		{"Missing keywords", `{"location":"Brasil"}`},
		{"Missing location", `{"keywords":"php"}`},
		{"Empty body", `{}`},
		{"Invalid json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/scrape", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestScrapeAcknowledgesBeforeOutcome(t *testing.T) {
	trigger := &fakeTrigger{}
	router, _, _ := newTestServer(t, trigger)

	w := doRequest(router, http.MethodPost, "/api/scrape", `{"keywords":"php","location":"Brasil"}`)

	require.Equal(t, http.StatusAccepted, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "run-123", body["run_id"])
	assert.Equal(t, "php", trigger.keywords)
	assert.Equal(t, "Brasil", trigger.location)
}

func TestScrapeConflictWhileRunning(t *testing.T) {
	router, _, _ := newTestServer(t, &fakeTrigger{err: crawler.ErrRunInProgress})

	w := doRequest(router, http.MethodPost, "/api/scrape", `{"keywords":"php","location":"Brasil"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestJobsNotFoundBeforeFirstRun(t *testing.T) {
	router, _, _ := newTestServer(t, &fakeTrigger{})

	w := doRequest(router, http.MethodGet, "/api/jobs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobsReturnsLedgerContents(t *testing.T) {
	router, store, _ := newTestServer(t, &fakeTrigger{})

	require.NoError(t, store.Append([]scraper.JobRecord{{
		JobID:           "42",
		Title:           "PHP Developer",
		Company:         "Acme",
		URL:             "https://www.linkedin.com/jobs/view/42",
		ApplicationType: scraper.ApplyDirect,
		ScrapedAt:       time.Now().UTC(),
	}}))

	w := doRequest(router, http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []scraper.JobRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].JobID)
}

func TestRunStatusEndpoint(t *testing.T) {
	router, _, registry := newTestServer(t, &fakeTrigger{})

	id := registry.Create("php", "Brasil")
	registry.MarkRunning(id)

	w := doRequest(router, http.MethodGet, "/api/runs/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var run runs.Run
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, runs.StatusRunning, run.Status)

	w = doRequest(router, http.MethodGet, "/api/runs/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t, &fakeTrigger{})

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
