package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue finds the sample for a CounterVec metric matching labels and
// returns its current value, or 0 if no matching series has been recorded
// yet.
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := Registry.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) != len(want) {
		return false
	}
	for _, lp := range got {
		if v, ok := want[lp.GetName()]; !ok || v != lp.GetValue() {
			return false
		}
	}
	return true
}

func TestRecordJobEnqueued(t *testing.T) {
	before := counterValue(t, "kanbanengine_dispatch_jobs_enqueued_total", map[string]string{"queue": "backend", "name": "run_dev_agent"})

	RecordJobEnqueued("backend", "run_dev_agent")

	after := counterValue(t, "kanbanengine_dispatch_jobs_enqueued_total", map[string]string{"queue": "backend", "name": "run_dev_agent"})
	assert.Equal(t, before+1, after)
}

func TestRecordJobCompletedIncrementsCounterAndHistogram(t *testing.T) {
	before := counterValue(t, "kanbanengine_dispatch_jobs_completed_total", map[string]string{"queue": "agent", "name": "run_pm_reply"})

	RecordJobCompleted("agent", "run_pm_reply", 0.25)

	after := counterValue(t, "kanbanengine_dispatch_jobs_completed_total", map[string]string{"queue": "agent", "name": "run_pm_reply"})
	assert.Equal(t, before+1, after)
}

func TestRecordJobFailed(t *testing.T) {
	before := counterValue(t, "kanbanengine_dispatch_jobs_failed_total", map[string]string{"queue": "backend", "name": "run_qa_agent"})

	RecordJobFailed("backend", "run_qa_agent")

	after := counterValue(t, "kanbanengine_dispatch_jobs_failed_total", map[string]string{"queue": "backend", "name": "run_qa_agent"})
	assert.Equal(t, before+1, after)
}

func TestRecordAgentRunnerOutcome(t *testing.T) {
	before := counterValue(t, "kanbanengine_agentrunner_outcomes_total", map[string]string{"role": "dev_agent", "outcome": "spawned"})

	RecordAgentRunnerOutcome("dev_agent", "spawned")

	after := counterValue(t, "kanbanengine_agentrunner_outcomes_total", map[string]string{"role": "dev_agent", "outcome": "spawned"})
	assert.Equal(t, before+1, after)
}

func TestRecordStallSweepAction(t *testing.T) {
	before := counterValue(t, "kanbanengine_stall_sweep_actions_total", map[string]string{"tier": "escalate"})

	RecordStallSweepAction("escalate")

	after := counterValue(t, "kanbanengine_stall_sweep_actions_total", map[string]string{"tier": "escalate"})
	assert.Equal(t, before+1, after)
}

func TestRecordLockContention(t *testing.T) {
	before := counterValue(t, "kanbanengine_lock_contention_total", map[string]string{"issue_role": "issue-1:dev_agent"})

	RecordLockContention("issue-1:dev_agent")

	after := counterValue(t, "kanbanengine_lock_contention_total", map[string]string{"issue_role": "issue-1:dev_agent"})
	assert.Equal(t, before+1, after)
}

func TestSetActiveLocks(t *testing.T) {
	SetActiveLocks(7)

	families, err := Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "kanbanengine_lock_active_total" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		assert.Equal(t, float64(7), mf.GetMetric()[0].GetGauge().GetValue())
	}
	assert.True(t, found, "expected kanbanengine_lock_active_total to be registered")
}

func TestHandlerServesPrometheusExposition(t *testing.T) {
	RecordJobEnqueued("agent", "handler_smoke_test")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kanbanengine_dispatch_jobs_enqueued_total")
}
