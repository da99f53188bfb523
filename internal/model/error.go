package model

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrJobNotFound      = errors.New("repair job not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrEmptyUpdate      = errors.New("empty update")
)
