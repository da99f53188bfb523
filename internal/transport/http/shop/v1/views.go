package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/view"
)

// RenderView dispatches a view tag through the view router. Unknown
// tags render the dashboard, mirroring the default route.
func (h *handler) RenderView(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	resolved, render := h.router.Resolve(tag)
	payload, err := render(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, struct {
		View    model.View `json:"view"`
		Payload any        `json:"payload"`
	}{View: resolved, Payload: payload})
}

// SetView is the navigation setter: it changes the current view tag
// and returns the updated sidebar state.
func (h *handler) SetView(w http.ResponseWriter, r *http.Request) {
	v := model.ParseView(chi.URLParam(r, "tag"))
	h.state.SetView(v)
	h.writeNavigation(w, r)
}

// Navigation returns the sidebar entries and the header title for the
// active section.
func (h *handler) Navigation(w http.ResponseWriter, r *http.Request) {
	h.writeNavigation(w, r)
}

func (h *handler) writeNavigation(w http.ResponseWriter, r *http.Request) {
	active := h.state.CurrentView()
	respondJSON(w, r, http.StatusOK, NavigationResponse{
		Header:   active.Title(),
		Sections: view.Sections(active),
	})
}

// RefreshState re-fetches all collections from the persistence
// gateway. It is the explicit staleness remedy for external writes.
func (h *handler) RefreshState(w http.ResponseWriter, r *http.Request) {
	if err := h.state.Refresh(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Section renderers behind the view router.

func (h *handler) renderDashboard(ctx context.Context) (any, error) {
	o, err := h.dashboard.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return DashboardToResponse(o), nil
}

func (h *handler) renderRepairs(ctx context.Context) (any, error) {
	jobs, err := h.repairs.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return RepairJobsToResponse(jobs), nil
}

func (h *handler) renderBilling(ctx context.Context) (any, error) {
	sales, err := h.billing.Sales(ctx)
	if err != nil {
		return nil, err
	}
	return SalesToResponse(sales), nil
}

func (h *handler) renderCustomers(ctx context.Context) (any, error) {
	customers, err := h.customers.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return CustomersToResponse(customers), nil
}

func (h *handler) renderInventory(ctx context.Context) (any, error) {
	o, err := h.inventory.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return InventoryToResponse(o), nil
}
