// Track crawl runs so API callers can poll their outcome

package runs

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run is the queryable state record of one crawl run.
type Run struct {
	ID         string     `json:"id"`
	Keywords   string     `json:"keywords"`
	Location   string     `json:"location"`
	Status     Status     `json:"status"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	JobsFound  int        `json:"jobsFound"`
	JobsNew    int        `json:"jobsNew"`
	JobsSaved  int        `json:"jobsSaved"`
}

// Registry keeps run records in memory for the lifetime of the process.
type Registry struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*Run)}
}

// Create registers a new pending run and returns its identifier.
func (r *Registry) Create(keywords, location string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.runs[id] = &Run{
		ID:        id,
		Keywords:  keywords,
		Location:  location,
		Status:    StatusPending,
		StartedAt: time.Now().UTC(),
	}
	return id
}

// Get returns a copy of the run record, or false if the id is unknown.
func (r *Registry) Get(id string) (Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

func (r *Registry) MarkRunning(id string) {
	r.update(id, func(run *Run) {
		run.Status = StatusRunning
	})
}

func (r *Registry) MarkSucceeded(id string, found, fresh, saved int) {
	now := time.Now().UTC()
	r.update(id, func(run *Run) {
		run.Status = StatusSucceeded
		run.FinishedAt = &now
		run.JobsFound = found
		run.JobsNew = fresh
		run.JobsSaved = saved
	})
}

func (r *Registry) MarkFailed(id string, err error) {
	now := time.Now().UTC()
	r.update(id, func(run *Run) {
		run.Status = StatusFailed
		run.FinishedAt = &now
		if err != nil {
			run.Error = err.Error()
		}
	})
}

func (r *Registry) update(id string, fn func(*Run)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run, ok := r.runs[id]; ok {
		fn(run)
	}
}
