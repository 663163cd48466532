// Package pmactions implements pm_agent's synchronous path: a single
// blocking Gateway call, followed by parsing structured JSON action
// markers embedded in the reply text and applying their side effects,
// rather than the spawn-and-callback protocol the other roles use
// (pkg/agentrunner).
package pmactions

import (
	"regexp"

	"github.com/tidwall/gjson"
)

// markerPattern matches one flat (non-nested) JSON object anywhere in the
// reply text. PM action markers are always flat: {"marker": "...", ...}.
var markerPattern = regexp.MustCompile(`\{[^{}]*\}`)

// MarkerKind is one of the four tagged action markers the PM role may emit.
type MarkerKind string

const (
	MarkerTicketAction      MarkerKind = "ticket_action"
	MarkerTicketConfirmed   MarkerKind = "ticket_confirmed"
	MarkerUpdateDescription MarkerKind = "update_description"
	MarkerSaveCredential    MarkerKind = "save_credential"
)

// Marker is one parsed action marker plus its raw JSON (kept for field
// access specific to its kind).
type Marker struct {
	Kind MarkerKind
	raw  string
}

// Parse scans reply for embedded action-marker JSON objects and strips them
// out, returning the markers found (in order of appearance) and the
// remaining human-readable text the customer should see in chat.
func Parse(reply string) (markers []Marker, visibleText string) {
	visibleText = markerPattern.ReplaceAllStringFunc(reply, func(candidate string) string {
		if !gjson.Valid(candidate) {
			return candidate
		}
		kind := gjson.Get(candidate, "marker")
		if !kind.Exists() {
			return candidate
		}
		markers = append(markers, Marker{Kind: MarkerKind(kind.String()), raw: candidate})
		return ""
	})
	return markers, collapseBlankLines(visibleText)
}

// Get extracts field from the marker's raw JSON via gjson's path syntax.
func (m Marker) Get(field string) gjson.Result {
	return gjson.Get(m.raw, field)
}

func collapseBlankLines(s string) string {
	var out []rune
	lastWasNewline := false
	for _, r := range s {
		if r == '\n' {
			if lastWasNewline {
				continue
			}
			lastWasNewline = true
		} else {
			lastWasNewline = false
		}
		out = append(out, r)
	}
	return string(out)
}
