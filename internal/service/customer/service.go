package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

// customerPreviewLimit is how many recent repairs a customer card shows.
const customerPreviewLimit = 2

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (string, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
}

type AppState interface {
	Snapshot() model.Snapshot
	Refresh(ctx context.Context) error
}

type CreateCustomerParams struct {
	Name  string
	Phone string
	Email string
}

type service struct {
	repo           CustomerRepository
	state          AppState
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCustomerService(
	repo CustomerRepository,
	state AppState,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		state:          state,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// List returns the customer directory filtered by the search term.
func (s *service) List(ctx context.Context, searchTerm string) ([]*model.Customer, error) {
	return Search(s.state.Snapshot().Customers, searchTerm), nil
}

// Create persists a new customer and refreshes the shared state.
func (s *service) Create(ctx context.Context, params CreateCustomerParams) (string, error) {
	const op = "customer.service.Create"
	log := logger.With(
		logger.String("phone", params.Phone),
	)

	params.Name = strings.TrimSpace(params.Name)
	params.Phone = strings.TrimSpace(params.Phone)
	if params.Name == "" || params.Phone == "" {
		log.Error(ctx, "validation: name and phone are required")
		return "", fmt.Errorf("%s: %w: name and phone are required", op, model.ErrValidation)
	}

	wCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(wCtx, &model.Customer{
		Name:  params.Name,
		Phone: params.Phone,
		Email: strings.TrimSpace(params.Email),
	})
	if err != nil {
		log.Error(ctx, "repository create customer", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		// The write succeeded; a failed reload only leaves the views
		// stale until the next refresh.
		log.Warn(ctx, "state refresh after create", logger.ErrorF(err))
	}

	return id, nil
}

// FindByPhone is the phone point lookup. A miss surfaces as
// model.ErrCustomerNotFound, which callers treat as a valid result.
func (s *service) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	const op = "customer.service.FindByPhone"

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%s: %w: phone must be non-empty", op, model.ErrValidation)
	}

	rCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	c, err := s.repo.FindByPhone(rCtx, phone)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Summary derives the repair digest of one customer.
func (s *service) Summary(ctx context.Context, customerID string) (*model.CustomerSummary, error) {
	const op = "customer.service.Summary"

	snap := s.state.Snapshot()
	c, found := lo.Find(snap.Customers, func(c *model.Customer) bool {
		return c.ID == customerID
	})
	if !found {
		return nil, fmt.Errorf("%s: %w", op, model.ErrCustomerNotFound)
	}

	sum := Summarize(c, snap.RepairJobs)
	return &sum, nil
}

// Search filters the directory: case-insensitive substring match on
// name, substring match on phone, case-insensitive substring match on
// email. An absent email never matches. An empty term returns the
// input unchanged.
func Search(customers []*model.Customer, term string) []*model.Customer {
	if term == "" {
		return customers
	}
	needle := strings.ToLower(term)

	return lo.Filter(customers, func(c *model.Customer, _ int) bool {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return true
		}
		if strings.Contains(c.Phone, term) {
			return true
		}
		return c.Email != "" && strings.Contains(strings.ToLower(c.Email), needle)
	})
}

// Summarize joins the jobs belonging to one customer: total count,
// pending-or-in-progress count, and the first jobs in gateway order
// as a preview.
func Summarize(c *model.Customer, jobs []*model.RepairJob) model.CustomerSummary {
	owned := lo.Filter(jobs, func(j *model.RepairJob, _ int) bool {
		return j.CustomerID == c.ID
	})

	pending := lo.CountBy(owned, func(j *model.RepairJob) bool {
		return j.Status == model.StatusPending || j.Status == model.StatusInProgress
	})

	return model.CustomerSummary{
		Customer:      c,
		TotalRepairs:  len(owned),
		PendingJobs:   pending,
		RecentRepairs: lo.Slice(owned, 0, customerPreviewLimit),
	}
}
