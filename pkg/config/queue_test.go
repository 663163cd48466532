package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 20, cfg.MaxConcurrentJobs)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 2*time.Minute, cfg.JobTimeout)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.RetryBaseDelay)
}

func TestQueueNames(t *testing.T) {
	assert.Equal(t, QueueName("agent"), QueueAgent)
	assert.Equal(t, QueueName("backend"), QueueBackend)
}
