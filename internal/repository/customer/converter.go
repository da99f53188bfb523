package repository

import (
	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

func EntityToModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}

	return &model.Customer{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(c *model.Customer) *CustomerEntity {
	if c == nil {
		return nil
	}

	return &CustomerEntity{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
