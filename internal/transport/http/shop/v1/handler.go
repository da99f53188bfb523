package http

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	customersvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/customer"
	dashboardsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/dashboard"
	repairsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/repair"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/view"
)

type DashboardService interface {
	Overview(ctx context.Context) (*dashboardsvc.Overview, error)
}

type CustomerService interface {
	List(ctx context.Context, searchTerm string) ([]*model.Customer, error)
	Create(ctx context.Context, params customersvc.CreateCustomerParams) (string, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	Summary(ctx context.Context, customerID string) (*model.CustomerSummary, error)
}

type RepairService interface {
	List(ctx context.Context, status string) ([]*model.RepairJob, error)
	Create(ctx context.Context, params repairsvc.CreateJobParams) (string, error)
	Update(ctx context.Context, id string, params repairsvc.UpdateJobParams) error
	AttachPhoto(ctx context.Context, jobID, filename string, src io.Reader) (string, error)
}

type BillingService interface {
	Sales(ctx context.Context) ([]*model.Sale, error)
	RecordSale(ctx context.Context, totalAmountCents int64) (string, error)
}

type InventoryService interface {
	Overview(ctx context.Context) (*model.InventoryOverview, error)
	UpdateStock(ctx context.Context, productID string, quantity int64) error
}

type PhotoStore interface {
	Download(ctx context.Context, id string, w io.Writer) error
}

type AppState interface {
	Refresh(ctx context.Context) error
	SetView(v model.View)
	CurrentView() model.View
}

type handler struct {
	dashboard DashboardService
	customers CustomerService
	repairs   RepairService
	billing   BillingService
	inventory InventoryService
	photos    PhotoStore
	state     AppState

	router *view.Router
}

func NewShopHandler(
	dashboard DashboardService,
	customers CustomerService,
	repairs RepairService,
	billing BillingService,
	inventory InventoryService,
	photos PhotoStore,
	state AppState,
) *handler {
	h := &handler{
		dashboard: dashboard,
		customers: customers,
		repairs:   repairs,
		billing:   billing,
		inventory: inventory,
		photos:    photos,
		state:     state,
	}

	// One renderer per section; the router owns the default-to-
	// dashboard fallback.
	r := view.NewRouter()
	r.Register(model.ViewDashboard, h.renderDashboard)
	r.Register(model.ViewRepairs, h.renderRepairs)
	r.Register(model.ViewBilling, h.renderBilling)
	r.Register(model.ViewCustomers, h.renderCustomers)
	r.Register(model.ViewInventory, h.renderInventory)
	h.router = r

	return h
}

func (h *handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/views", h.Navigation)
		r.Get("/views/{tag}", h.RenderView)
		r.Put("/views/{tag}", h.SetView)

		r.Get("/dashboard", h.Dashboard)

		r.Get("/customers", h.ListCustomers)
		r.Post("/customers", h.CreateCustomer)
		r.Get("/customers/lookup", h.LookupCustomer)
		r.Get("/customers/{id}/summary", h.CustomerSummary)

		r.Get("/repairs", h.ListRepairs)
		r.Post("/repairs", h.CreateRepair)
		r.Patch("/repairs/{id}", h.UpdateRepair)
		r.Post("/repairs/{id}/photos", h.UploadPhoto)

		r.Get("/billing", h.Billing)
		r.Post("/sales", h.RecordSale)

		r.Get("/inventory", h.Inventory)
		r.Patch("/products/{id}/stock", h.UpdateStock)

		r.Post("/state/refresh", h.RefreshState)
	})

	r.Get("/photos/{id}", h.DownloadPhoto)
}
