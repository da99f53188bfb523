package model

import "time"

type Customer struct {
	// Opaque identifier assigned by the repository on create.
	ID string
	// Full customer name.
	Name string
	// Contact phone. Natural dedup key for walk-in lookups;
	// uniqueness is not enforced.
	Phone string
	// Optional e-mail; empty string means absent.
	Email string
	// Timestamp when the customer record was created.
	CreatedAt time.Time
}

// CustomerSummary is the per-customer repair digest shown on the
// customer card.
type CustomerSummary struct {
	Customer     *Customer
	TotalRepairs int
	PendingJobs  int
	// Up to two most recent jobs, in gateway order.
	RecentRepairs []*RepairJob
}
