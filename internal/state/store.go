package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

type CustomerLister interface {
	List(ctx context.Context) ([]*model.Customer, error)
}

type RepairJobLister interface {
	List(ctx context.Context) ([]*model.RepairJob, error)
}

type ProductLister interface {
	List(ctx context.Context) ([]*model.Product, error)
}

type SaleLister interface {
	List(ctx context.Context) ([]*model.Sale, error)
}

// Store is the shared application state: one in-memory copy of the
// four collections, loaded through the persistence gateway and read
// by every view. It is a cache, never the system of record: a write
// that is not followed by Refresh leaves the views stale until the
// next reload. It also tracks the current view tag, the single
// navigation primitive.
type Store struct {
	customers  CustomerLister
	repairJobs RepairJobLister
	products   ProductLister
	sales      SaleLister

	mu   sync.RWMutex
	snap model.Snapshot
	view model.View
}

func NewStore(
	customers CustomerLister,
	repairJobs RepairJobLister,
	products ProductLister,
	sales SaleLister,
) *Store {
	return &Store{
		customers:  customers,
		repairJobs: repairJobs,
		products:   products,
		sales:      sales,
		view:       model.ViewDashboard,
	}
}

// Load fetches all four collections and replaces the snapshot. Called
// once at startup and again on every Refresh; there is no automatic
// invalidation in between.
func (s *Store) Load(ctx context.Context) error {
	const op = "state.Load"

	customers, err := s.customers.List(ctx)
	if err != nil {
		return fmt.Errorf("%s customers: %w", op, err)
	}

	jobs, err := s.repairJobs.List(ctx)
	if err != nil {
		return fmt.Errorf("%s repair jobs: %w", op, err)
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("%s products: %w", op, err)
	}

	sales, err := s.sales.List(ctx)
	if err != nil {
		return fmt.Errorf("%s sales: %w", op, err)
	}

	s.mu.Lock()
	s.snap = model.Snapshot{
		Customers:  customers,
		RepairJobs: jobs,
		Products:   products,
		Sales:      sales,
	}
	s.mu.Unlock()

	logger.Info(ctx, "application state loaded",
		logger.Int("customers", len(customers)),
		logger.Int("repair_jobs", len(jobs)),
		logger.Int("products", len(products)),
		logger.Int("sales", len(sales)),
	)
	return nil
}

// Refresh is the staleness remedy: callers that wrote through the
// gateway re-run the full load.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Snapshot returns the current state. The slice headers are copied so
// a concurrent Load cannot swap data out from under a reader.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Snapshot{
		Customers:  append([]*model.Customer(nil), s.snap.Customers...),
		RepairJobs: append([]*model.RepairJob(nil), s.snap.RepairJobs...),
		Products:   append([]*model.Product(nil), s.snap.Products...),
		Sales:      append([]*model.Sale(nil), s.snap.Sales...),
	}
}

func (s *Store) SetView(v model.View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

func (s *Store) CurrentView() model.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}
