package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type updateStockRequest struct {
	StockQuantity int64 `json:"stock_quantity"`
}

func (h *handler) Inventory(w http.ResponseWriter, r *http.Request) {
	o, err := h.inventory.Overview(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, InventoryToResponse(o))
}

func (h *handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return
	}

	if err := h.inventory.UpdateStock(r.Context(), chi.URLParam(r, "id"), req.StockQuantity); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
