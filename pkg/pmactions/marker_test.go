package pmactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractsSingleMarker(t *testing.T) {
	reply := `Sounds good, I'll get this moving.
{"marker":"ticket_action","to_column":"ready_for_uat_approval","note":"approved by pm"}
Let me know if you need anything else.`

	markers, visible := Parse(reply)
	require.Len(t, markers, 1)
	assert.Equal(t, MarkerTicketAction, markers[0].Kind)
	assert.Equal(t, "ready_for_uat_approval", markers[0].Get("to_column").String())
	assert.Equal(t, "approved by pm", markers[0].Get("note").String())
	assert.NotContains(t, visible, "marker")
	assert.Contains(t, visible, "Sounds good")
	assert.Contains(t, visible, "Let me know")
}

func TestParseExtractsMultipleMarkers(t *testing.T) {
	reply := `{"marker":"update_description","text":"customer wants dark mode too"}
{"marker":"save_credential","site_id":"site-1","credential_type":"ftp","value":"secret"}
Got it, saved.`

	markers, visible := Parse(reply)
	require.Len(t, markers, 2)
	assert.Equal(t, MarkerUpdateDescription, markers[0].Kind)
	assert.Equal(t, MarkerSaveCredential, markers[1].Kind)
	assert.Equal(t, "site-1", markers[1].Get("site_id").String())
	assert.Contains(t, visible, "Got it, saved.")
}

func TestParseNoMarkers(t *testing.T) {
	markers, visible := Parse("Just a plain reply, nothing to do here.")
	assert.Empty(t, markers)
	assert.Equal(t, "Just a plain reply, nothing to do here.", visible)
}

func TestParseIgnoresNonMarkerJSON(t *testing.T) {
	reply := `Here's an example payload: {"foo":"bar"} — not an action.`
	markers, visible := Parse(reply)
	assert.Empty(t, markers)
	assert.Contains(t, visible, "example payload")
}
