package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) (string, error)
}

type AppState interface {
	Snapshot() model.Snapshot
	Refresh(ctx context.Context) error
}

type service struct {
	repo           SaleRepository
	state          AppState
	writeDBTimeout time.Duration
}

func NewBillingService(
	repo SaleRepository,
	state AppState,
	writeDBTimeout time.Duration,
) *service {
	return &service{repo: repo, state: state, writeDBTimeout: writeDBTimeout}
}

// Sales returns the billing view: all sales, newest first by the
// gateway's sort contract.
func (s *service) Sales(ctx context.Context) ([]*model.Sale, error) {
	return s.state.Snapshot().Sales, nil
}

// RecordSale persists a sale; the transaction timestamp is stamped by
// the gateway.
func (s *service) RecordSale(ctx context.Context, totalAmountCents int64) (string, error) {
	const op = "billing.service.RecordSale"
	log := logger.With(
		logger.Int64("total_amount_cents", totalAmountCents),
	)

	if totalAmountCents <= 0 {
		log.Error(ctx, "validation: non-positive amount")
		return "", fmt.Errorf("%s: %w: total amount must be positive", op, model.ErrValidation)
	}

	wCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(wCtx, &model.Sale{TotalAmountCents: totalAmountCents})
	if err != nil {
		log.Error(ctx, "repository create sale", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Warn(ctx, "state refresh after sale", logger.ErrorF(err))
	}

	return id, nil
}
