package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ticketforge/kanbanengine/pkg/config"
)

func TestWorkerPollIntervalWithinJitterBounds(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	w := &Worker{config: cfg}

	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, cfg.PollInterval-cfg.PollIntervalJitter)
		assert.LessOrEqual(t, d, cfg.PollInterval+cfg.PollIntervalJitter)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := &config.QueueConfig{PollInterval: 2 * time.Second, PollIntervalJitter: 0}
	w := &Worker{config: cfg}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}
