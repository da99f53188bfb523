package http

import (
	"time"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	dashboardsvc "github.com/Vivekjangir90/mobile-repair-shop/internal/service/dashboard"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/view"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RepairJobResponse struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customer_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerPhone      string     `json:"customer_phone"`
	DeviceBrand        string     `json:"device_brand"`
	DeviceModel        string     `json:"device_model"`
	ProblemDescription string     `json:"problem_description"`
	Status             string     `json:"status"`
	PhotoURLs          []string   `json:"photo_urls,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

type ProductResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	DefaultPriceCents int64  `json:"default_price_cents"`
	CurrentPriceCents int64  `json:"current_price_cents"`
	StockQuantity     *int64 `json:"stock_quantity,omitempty"`
	LowStockAlert     *int64 `json:"low_stock_alert,omitempty"`
	LowStock          bool   `json:"low_stock"`
}

type SaleResponse struct {
	ID               string    `json:"id"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Date             time.Time `json:"date"`
}

type DashboardStatsResponse struct {
	TodayRepairs      int   `json:"today_repairs"`
	PendingJobs       int   `json:"pending_jobs"`
	CompletedToday    int   `json:"completed_today"`
	RevenueTodayCents int64 `json:"revenue_today_cents"`
}

type DashboardResponse struct {
	Stats      DashboardStatsResponse `json:"stats"`
	RecentJobs []RepairJobResponse    `json:"recent_jobs"`
}

type CustomerSummaryResponse struct {
	Customer      CustomerResponse    `json:"customer"`
	TotalRepairs  int                 `json:"total_repairs"`
	PendingJobs   int                 `json:"pending_jobs"`
	RecentRepairs []RepairJobResponse `json:"recent_repairs"`
}

type InventoryResponse struct {
	Accessories []ProductResponse `json:"accessories"`
	Services    []ProductResponse `json:"services"`
	LowStock    []ProductResponse `json:"low_stock"`
}

type NavigationResponse struct {
	Header   string         `json:"header"`
	Sections []view.Section `json:"sections"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type PhotoResponse struct {
	URL string `json:"url"`
}

func CustomerToResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func CustomersToResponse(customers []*model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToResponse(c))
	}
	return out
}

func RepairJobToResponse(j *model.RepairJob) RepairJobResponse {
	return RepairJobResponse{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		CustomerName:       j.CustomerName,
		CustomerPhone:      j.CustomerPhone,
		DeviceBrand:        j.DeviceBrand,
		DeviceModel:        j.DeviceModel,
		ProblemDescription: j.ProblemDescription,
		Status:             string(j.Status),
		PhotoURLs:          j.PhotoURLs,
		CreatedAt:          j.CreatedAt,
		CompletedAt:        j.CompletedAt,
	}
}

func RepairJobsToResponse(jobs []*model.RepairJob) []RepairJobResponse {
	out := make([]RepairJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, RepairJobToResponse(j))
	}
	return out
}

func ProductToResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          string(p.Category),
		DefaultPriceCents: p.DefaultPriceCents,
		CurrentPriceCents: p.CurrentPriceCents,
		StockQuantity:     p.StockQuantity,
		LowStockAlert:     p.LowStockAlert,
		LowStock:          p.LowStock(),
	}
}

func ProductsToResponse(products []*model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return out
}

func SalesToResponse(sales []*model.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleResponse{
			ID:               s.ID,
			TotalAmountCents: s.TotalAmountCents,
			Date:             s.Date,
		})
	}
	return out
}

func DashboardToResponse(o *dashboardsvc.Overview) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TodayRepairs:      o.Stats.TodayRepairs,
			PendingJobs:       o.Stats.PendingJobs,
			CompletedToday:    o.Stats.CompletedToday,
			RevenueTodayCents: o.Stats.RevenueTodayCents,
		},
		RecentJobs: RepairJobsToResponse(o.RecentJobs),
	}
}

func SummaryToResponse(s *model.CustomerSummary) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		Customer:      CustomerToResponse(s.Customer),
		TotalRepairs:  s.TotalRepairs,
		PendingJobs:   s.PendingJobs,
		RecentRepairs: RepairJobsToResponse(s.RecentRepairs),
	}
}

func InventoryToResponse(o *model.InventoryOverview) InventoryResponse {
	return InventoryResponse{
		Accessories: ProductsToResponse(o.Accessories),
		Services:    ProductsToResponse(o.Services),
		LowStock:    ProductsToResponse(o.LowStock),
	}
}
