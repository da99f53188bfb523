package model

// Snapshot is one consistent read of the shared application state.
// Every view derives its payload from a snapshot; the slices are
// owned by the reader and safe to range over while the store reloads.
type Snapshot struct {
	Customers  []*Customer
	RepairJobs []*RepairJob
	Products   []*Product
	Sales      []*Sale
}

// DashboardStats are the day-scoped counters on the dashboard view.
type DashboardStats struct {
	TodayRepairs      int
	PendingJobs       int
	CompletedToday    int
	RevenueTodayCents int64
}
