package validation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

func exportFixture() []models.StateRecord {
	vec := models.Vector{Velocity: 0.7, Resistance: 0.2, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1}
	return []models.StateRecord{
		{
			ID:        "rec-1",
			UserID:    "u1",
			Text:      "in the zone",
			Vector:    vec,
			Wellbeing: vec.Wellbeing(),
			Phase:     models.PhaseTranscendence,
			CreatedAt: time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "rec-2",
			UserID:    "u1",
			Vector:    models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5},
			Wellbeing: 0.5,
			Phase:     models.PhaseIntegration,
			CreatedAt: time.Date(2026, time.March, 5, 13, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, exportFixture()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv = %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
	}

	wantHeader := "id,user_id,created_at,v,R,r,C,S,wellbeing,phase,text"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantRow := "rec-1,u1,2026-03-05T12:00:00Z,0.7,0.2,0.8,0.9,0.1,0.85,transcendence,in the zone"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "id,user_id,created_at,v,R,r,C,S,wellbeing,phase,text" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, exportFixture()); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded []exportRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("decoded = %d records, want 2", len(decoded))
	}
	first := decoded[0]
	if first.ID != "rec-1" || first.UserID != "u1" {
		t.Errorf("identity = %q/%q", first.ID, first.UserID)
	}
	if first.CreatedAt != "2026-03-05T12:00:00Z" {
		t.Errorf("created_at = %q", first.CreatedAt)
	}
	if first.Velocity != 0.7 || first.Entropy != 0.1 {
		t.Errorf("vector = %+v", first)
	}
	if first.Wellbeing != 0.85 {
		t.Errorf("wellbeing = %v, want 0.85", first.Wellbeing)
	}

	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := raw[0]["text"]; !ok {
		t.Errorf("first record should carry text")
	}
	if _, ok := raw[1]["text"]; ok {
		t.Errorf("second record should omit empty text")
	}
}
