package api

import (
	"net/http"
	"testing"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

func TestListPhenomena(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/phenomena", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	resp := decodeBody[PhenomenaListResponse](t, w)
	if resp.Total == 0 || resp.Total != len(resp.Phenomena) {
		t.Errorf("total = %d, phenomena = %d", resp.Total, len(resp.Phenomena))
	}
}

func TestListPhenomenaFilters(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/phenomena?phase=transcendence", nil)
	resp := decodeBody[PhenomenaListResponse](t, w)
	if resp.Total == 0 {
		t.Fatal("no transcendence phenomena returned")
	}
	for _, p := range resp.Phenomena {
		if p.Phase != models.PhaseTranscendence {
			t.Errorf("phenomenon %q phase = %q, want transcendence", p.Term, p.Phase)
		}
	}

	w = doRequest(t, srv, http.MethodGet, "/api/v1/phenomena?limit=2", nil)
	resp = decodeBody[PhenomenaListResponse](t, w)
	if resp.Total != 2 {
		t.Errorf("limited total = %d, want 2", resp.Total)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/v1/phenomena?limit=nope", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", w.Code)
	}
}

func TestGetPhenomenon(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/phenomena/flow%20state", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	resp := decodeBody[PhenomenonResponse](t, w)
	if resp.Term != "Flow State" {
		t.Errorf("term = %q, want Flow State", resp.Term)
	}
	if len(resp.Related) == 0 {
		t.Error("related phenomena missing")
	}
	for _, rel := range resp.Related {
		if rel.Term == "" || rel.ID == 0 {
			t.Errorf("related entry not resolved: %+v", rel)
		}
	}
}

func TestGetPhenomenonUnknown(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/phenomena/unobtainium", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
