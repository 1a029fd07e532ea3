package runs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	id := r.Create("php", "Brasil")
	require.NotEmpty(t, id)

	run, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, StatusPending, run.Status)
	assert.Equal(t, "php", run.Keywords)
	assert.Equal(t, "Brasil", run.Location)
	assert.Nil(t, run.FinishedAt)

	r.MarkRunning(id)
	run, _ = r.Get(id)
	assert.Equal(t, StatusRunning, run.Status)

	r.MarkSucceeded(id, 37, 12, 5)
	run, _ = r.Get(id)
	assert.Equal(t, StatusSucceeded, run.Status)
	assert.Equal(t, 37, run.JobsFound)
	assert.Equal(t, 12, run.JobsNew)
	assert.Equal(t, 5, run.JobsSaved)
	require.NotNil(t, run.FinishedAt)
}

func TestRegistryMarkFailed(t *testing.T) {
	r := NewRegistry()
	id := r.Create("golang", "Remote")

	r.MarkFailed(id, errors.New("login failed"))

	run, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, StatusFailed, run.Status)
	assert.Equal(t, "login failed", run.Error)
	assert.NotNil(t, run.FinishedAt)
}

func TestRegistryUnknownID(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("nope")
	assert.False(t, ok)

	//updates on unknown ids are silently ignored
	r.MarkRunning("nope")
	r.MarkFailed("nope", errors.New("x"))
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	id := r.Create("php", "Brasil")

	run, _ := r.Get(id)
	run.Status = StatusFailed

	fresh, _ := r.Get(id)
	assert.Equal(t, StatusPending, fresh.Status)
}
