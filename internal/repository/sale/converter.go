package repository

import (
	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

func EntityToModel(e *SaleEntity) *model.Sale {
	if e == nil {
		return nil
	}

	return &model.Sale{
		ID:               e.ID,
		TotalAmountCents: e.TotalAmountCents,
		Date:             e.Date,
	}
}

func EntityFromModel(s *model.Sale) *SaleEntity {
	if s == nil {
		return nil
	}

	return &SaleEntity{
		ID:               s.ID,
		TotalAmountCents: s.TotalAmountCents,
		Date:             s.Date,
	}
}
