package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

type RepairJobRepository interface {
	ListByStatus(ctx context.Context, status model.JobStatus) ([]*model.RepairJob, error)
	JobByID(ctx context.Context, id string) (*model.RepairJob, error)
	Create(ctx context.Context, j *model.RepairJob) (string, error)
	Update(ctx context.Context, id string, upd model.RepairJobUpdate) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (string, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
}

type PhotoStore interface {
	Upload(ctx context.Context, jobID, filename string, src io.Reader) (string, error)
}

type AppState interface {
	Snapshot() model.Snapshot
	Refresh(ctx context.Context) error
}

type CreateJobParams struct {
	// When CustomerID is empty the customer is resolved by phone,
	// creating a record for a walk-in if none exists.
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	DeviceBrand        string
	DeviceModel        string
	ProblemDescription string
}

type UpdateJobParams struct {
	Status             *model.JobStatus
	ProblemDescription *string
	DeviceBrand        *string
	DeviceModel        *string
}

type service struct {
	repo           RepairJobRepository
	customers      CustomerRepository
	photos         PhotoStore
	state          AppState
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewRepairService(
	repo RepairJobRepository,
	customers CustomerRepository,
	photos PhotoStore,
	state AppState,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		customers:      customers,
		photos:         photos,
		state:          state,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

// List returns the job tracker view: the full shared-state sequence,
// or a status-filtered fetch when a filter is given.
func (s *service) List(ctx context.Context, status string) ([]*model.RepairJob, error) {
	const op = "repair.service.List"

	if status == "" {
		return s.state.Snapshot().RepairJobs, nil
	}

	st := model.JobStatus(status)
	if !model.KnownStatus(st) {
		return nil, fmt.Errorf("%s: %w: unknown status %q", op, model.ErrValidation, status)
	}

	rCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	jobs, err := s.repo.ListByStatus(rCtx, st)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return jobs, nil
}

// Create opens a repair job. The owning customer is resolved first so
// the job carries the denormalized name and phone for display lists.
func (s *service) Create(ctx context.Context, params CreateJobParams) (string, error) {
	const op = "repair.service.Create"
	log := logger.With(
		logger.String("customer_phone", params.CustomerPhone),
		logger.String("device_brand", params.DeviceBrand),
	)

	if strings.TrimSpace(params.DeviceBrand) == "" ||
		strings.TrimSpace(params.ProblemDescription) == "" {
		log.Error(ctx, "validation: device brand and problem description are required")
		return "", fmt.Errorf("%s: %w: device brand and problem description are required", op, model.ErrValidation)
	}

	cust, err := s.resolveCustomer(ctx, params)
	if err != nil {
		log.Error(ctx, "resolve customer", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	wCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(wCtx, &model.RepairJob{
		CustomerID:         cust.ID,
		CustomerName:       cust.Name,
		CustomerPhone:      cust.Phone,
		DeviceBrand:        strings.TrimSpace(params.DeviceBrand),
		DeviceModel:        strings.TrimSpace(params.DeviceModel),
		ProblemDescription: strings.TrimSpace(params.ProblemDescription),
		Status:             model.StatusPending,
	})
	if err != nil {
		log.Error(ctx, "repository create job", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Warn(ctx, "state refresh after create", logger.ErrorF(err))
	}

	return id, nil
}

// Update applies a partial update. Any status transition is permitted;
// moving into completed stamps the completion timestamp.
func (s *service) Update(ctx context.Context, id string, params UpdateJobParams) error {
	const op = "repair.service.Update"
	log := logger.With(
		logger.String("job_id", id),
	)

	if params.Status != nil && !model.KnownStatus(*params.Status) {
		log.Error(ctx, "validation: unknown status", logger.String("status", string(*params.Status)))
		return fmt.Errorf("%s: %w: unknown status %q", op, model.ErrValidation, *params.Status)
	}

	upd := model.RepairJobUpdate{
		Status:             params.Status,
		ProblemDescription: params.ProblemDescription,
		DeviceBrand:        params.DeviceBrand,
		DeviceModel:        params.DeviceModel,
	}
	if params.Status != nil && *params.Status == model.StatusCompleted {
		upd.CompletedAt = lo.ToPtr(s.now().UTC())
	}
	if upd.Empty() {
		return fmt.Errorf("%s: %w", op, model.ErrEmptyUpdate)
	}

	wCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Update(wCtx, id, upd); err != nil {
		log.Error(ctx, "repository update job", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Warn(ctx, "state refresh after update", logger.ErrorF(err))
	}

	return nil
}

// AttachPhoto stores a photo for the job in the blob store, records
// the retrieval URL on the job, and returns the URL.
func (s *service) AttachPhoto(ctx context.Context, jobID, filename string, src io.Reader) (string, error) {
	const op = "repair.service.AttachPhoto"
	log := logger.With(
		logger.String("job_id", jobID),
		logger.String("filename", filename),
	)

	rCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	if _, err := s.repo.JobByID(rCtx, jobID); err != nil {
		cancel()
		log.Error(ctx, "repository job by id", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	cancel()

	url, err := s.photos.Upload(ctx, jobID, filename, src)
	if err != nil {
		log.Error(ctx, "photo upload", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	wCtx, wCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wCancel()

	if err := s.repo.Update(wCtx, jobID, model.RepairJobUpdate{
		AddPhotoURL: &url,
	}); err != nil {
		log.Error(ctx, "record photo url", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Warn(ctx, "state refresh after photo", logger.ErrorF(err))
	}

	return url, nil
}

func (s *service) resolveCustomer(ctx context.Context, params CreateJobParams) (*model.Customer, error) {
	rCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	if params.CustomerID != "" {
		snap := s.state.Snapshot()
		c, found := lo.Find(snap.Customers, func(c *model.Customer) bool {
			return c.ID == params.CustomerID
		})
		if !found {
			return nil, model.ErrCustomerNotFound
		}
		return c, nil
	}

	phone := strings.TrimSpace(params.CustomerPhone)
	if phone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", model.ErrValidation)
	}

	c, err := s.customers.FindByPhone(rCtx, phone)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, model.ErrCustomerNotFound) {
		return nil, err
	}

	// Walk-in: create the customer record on the spot.
	name := strings.TrimSpace(params.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required for a new customer", model.ErrValidation)
	}

	wCtx, wCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wCancel()

	id, err := s.customers.Create(wCtx, &model.Customer{Name: name, Phone: phone})
	if err != nil {
		return nil, err
	}

	return &model.Customer{ID: id, Name: name, Phone: phone}, nil
}
