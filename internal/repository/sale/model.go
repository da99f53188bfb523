package repository

import "time"

type SaleEntity struct {
	ID               string    `bson:"_id"`
	TotalAmountCents int64     `bson:"total_amount_cents"`
	Date             time.Time `bson:"date"`
}
