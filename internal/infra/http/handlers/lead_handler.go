package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-backend/internal/infra/http/middleware"
	"github.com/xavierca1/crm-backend/internal/usecase"
)

type LeadHandler struct {
	ListUC  *usecase.ListLeadsUseCase
	GetUC   *usecase.GetLeadUseCase
	StatsUC *usecase.LeadStatsUseCase
}

func NewLeadHandler(listUC *usecase.ListLeadsUseCase, getUC *usecase.GetLeadUseCase, statsUC *usecase.LeadStatsUseCase) *LeadHandler {
	return &LeadHandler{ListUC: listUC, GetUC: getUC, StatsUC: statsUC}
}

// HandleList serves GET /leads: filtered, sorted, paginated page of leads
// plus pagination metadata.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := usecase.LeadQueryFromValues(r.URL.Query())

	out, err := h.ListUC.Execute(r.Context(), query)
	if err != nil {
		writeError(w, err, "Server error fetching leads")
		return
	}

	middleware.RecordLeadQuery("list")
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	lead, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Server error fetching lead")
		return
	}

	middleware.RecordLeadQuery("detail")
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeError(w, err, "Server error fetching stats")
		return
	}

	middleware.RecordLeadQuery("stats")
	writeJSON(w, http.StatusOK, out)
}
