package api

import (
	"errors"
	"net/http"

	"go-linkedin-scraper/internal/crawler"
	"go-linkedin-scraper/internal/ledger"
	"go-linkedin-scraper/internal/runs"

	"github.com/gin-gonic/gin"
)

// Trigger starts a background crawl and returns its run id.
type Trigger interface {
	Trigger(keywords, location string) (string, error)
}

type Server struct {
	trigger  Trigger
	store    *ledger.Ledger
	registry *runs.Registry
}

func NewServer(trigger Trigger, store *ledger.Ledger, registry *runs.Registry) *Server {
	return &Server{
		trigger:  trigger,
		store:    store,
		registry: registry,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "LinkedIn Scraper API is running!",
			"status":  "healthy",
		})
	})

	apiGroup := r.Group("/api")
	apiGroup.POST("/scrape", s.handleScrape)
	apiGroup.GET("/jobs", s.handleJobs)
	apiGroup.GET("/runs/:id", s.handleRun)

	return r
}

type scrapeRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

// handleScrape triggers a crawl and acknowledges immediately; callers poll
// /api/runs/:id or /api/jobs for the outcome.
func (s *Server) handleScrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Keywords == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Parameters "keywords" and "location" are required.`})
		return
	}

	runID, err := s.trigger.Trigger(req.Keywords, req.Location)
	if err != nil {
		if errors.Is(err, crawler.ErrRunInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": "A scraping run is already in progress."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start scraping."})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Scraping started.",
		"run_id":   runID,
		"keywords": req.Keywords,
		"location": req.Location,
	})
}

func (s *Server) handleJobs(c *gin.Context) {
	records, err := s.store.LoadAll()
	if err != nil {
		if errors.Is(err, ledger.ErrNoLedger) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No jobs file found. Run the scraper first."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read jobs."})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (s *Server) handleRun(c *gin.Context) {
	run, ok := s.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found."})
		return
	}

	c.JSON(http.StatusOK, run)
}
