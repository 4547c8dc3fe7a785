package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// PhenomenaListResponse is the catalog listing payload
type PhenomenaListResponse struct {
	Total     int                 `json:"total"`
	Phenomena []models.Phenomenon `json:"phenomena"`
}

// PhenomenonResponse is a single catalog entry with its related entries
// resolved
type PhenomenonResponse struct {
	models.Phenomenon
	Related []models.Phenomenon `json:"related_phenomena"`
}

func (s *Server) handleListPhenomena(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	f := catalog.Filter{
		Phase: r.URL.Query().Get("phase"),
		Tag:   r.URL.Query().Get("tag"),
		Limit: limit,
	}

	phenomena := s.engine.Catalog().List(f)
	respondJSON(w, http.StatusOK, PhenomenaListResponse{
		Total:     len(phenomena),
		Phenomena: phenomena,
	})
}

func (s *Server) handleGetPhenomenon(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")

	entry, err := s.engine.Catalog().Get(term)
	if err != nil {
		s.respondServiceError(w, err, "failed to fetch phenomenon")
		return
	}

	related, err := s.engine.Catalog().Related(term)
	if err != nil {
		s.respondServiceError(w, err, "failed to fetch phenomenon")
		return
	}

	respondJSON(w, http.StatusOK, PhenomenonResponse{
		Phenomenon: entry,
		Related:    related,
	})
}
