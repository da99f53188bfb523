package http

import "net/http"

func (h *handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	o, err := h.dashboard.Overview(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, DashboardToResponse(o))
}
