package model

import "time"

type Sale struct {
	// Opaque identifier assigned by the repository on create.
	ID string
	// Total transaction amount.
	TotalAmountCents int64
	// Transaction timestamp, stamped by the repository on create.
	Date time.Time
}
