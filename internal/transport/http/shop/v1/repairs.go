package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	repairsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/repair"
)

type createRepairRequest struct {
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone"`
	DeviceBrand        string `json:"device_brand"`
	DeviceModel        string `json:"device_model"`
	ProblemDescription string `json:"problem_description"`
}

type updateRepairRequest struct {
	Status             *string `json:"status"`
	ProblemDescription *string `json:"problem_description"`
	DeviceBrand        *string `json:"device_brand"`
	DeviceModel        *string `json:"device_model"`
}

func (h *handler) ListRepairs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repairs.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, RepairJobsToResponse(jobs))
}

func (h *handler) CreateRepair(w http.ResponseWriter, r *http.Request) {
	var req createRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return
	}

	id, err := h.repairs.Create(r.Context(), repairsvc.CreateJobParams{
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		DeviceBrand:        req.DeviceBrand,
		DeviceModel:        req.DeviceModel,
		ProblemDescription: req.ProblemDescription,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

func (h *handler) UpdateRepair(w http.ResponseWriter, r *http.Request) {
	var req updateRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return
	}

	params := repairsvc.UpdateJobParams{
		ProblemDescription: req.ProblemDescription,
		DeviceBrand:        req.DeviceBrand,
		DeviceModel:        req.DeviceModel,
	}
	if req.Status != nil {
		st := model.JobStatus(*req.Status)
		params.Status = &st
	}

	if err := h.repairs.Update(r.Context(), chi.URLParam(r, "id"), params); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
