package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

func TestHistoryEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	seedHistory(t, srv, "u1",
		models.PredefinedVectors["burnout"],
		models.PredefinedVectors["peace"],
		models.PredefinedVectors["flow"],
	)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/history?user_id=u1&limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	resp := decodeBody[HistoryResponse](t, w)
	if resp.UserID != "u1" || resp.Total != 2 {
		t.Errorf("user_id = %q, total = %d", resp.UserID, resp.Total)
	}
	if resp.Records[0].Vector != models.PredefinedVectors["peace"] {
		t.Errorf("records not oldest first: %+v", resp.Records[0].Vector)
	}
	if resp.Records[1].Vector != models.PredefinedVectors["flow"] {
		t.Errorf("newest record = %+v", resp.Records[1].Vector)
	}
}

func TestHistoryEmptyUser(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/history?user_id=ghost", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp := decodeBody[HistoryResponse](t, w); resp.Total != 0 {
		t.Errorf("total = %d, want 0", resp.Total)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	seedHistory(t, srv, "u1", models.PredefinedVectors["flow"])

	w := doRequest(t, srv, http.MethodGet, "/api/v1/export?user_id=u1&format=csv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "synthium_history.csv") {
		t.Errorf("content disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv = %d lines, want header plus 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,user_id,created_at") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], ",u1,") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportJSONEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	seedHistory(t, srv, "u1", models.PredefinedVectors["flow"])

	w := doRequest(t, srv, http.MethodGet, "/api/v1/export?user_id=u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	records := decodeBody[[]map[string]any](t, w)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["user_id"] != "u1" {
		t.Errorf("user_id = %v", records[0]["user_id"])
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/export?user_id=u1&format=xml", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
