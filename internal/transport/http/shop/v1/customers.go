package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	customersvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/customer"
)

type createCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, CustomersToResponse(customers))
}

func (h *handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return
	}

	id, err := h.customers.Create(r.Context(), customersvc.CreateCustomerParams{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}

// LookupCustomer resolves a customer by exact phone. A miss is a 404
// with a JSON body, not a server failure.
func (h *handler) LookupCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.FindByPhone(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, CustomerToResponse(c))
}

func (h *handler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.customers.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, SummaryToResponse(sum))
}
