package model

import "time"

type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusDelivered  JobStatus = "delivered"
)

// KnownStatus reports whether s is one of the four closed statuses.
func KnownStatus(s JobStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDelivered:
		return true
	default:
		return false
	}
}

type RepairJob struct {
	// Opaque identifier assigned by the repository on create.
	ID string
	// Owning customer.
	CustomerID string
	// Denormalized customer fields for display lists.
	CustomerName  string
	CustomerPhone string
	// Device under repair.
	DeviceBrand string
	DeviceModel string
	// Free-form fault description.
	ProblemDescription string
	// Current status. Transitions are caller-driven; any status may
	// be set to any other.
	Status JobStatus
	// Retrieval URLs of photos attached to the job.
	PhotoURLs []string
	// Timestamp when the job was created.
	CreatedAt time.Time
	// Timestamp when the job was marked completed; nil until then.
	CompletedAt *time.Time
}

// RepairJobUpdate carries a partial update: nil fields are left
// untouched by the repository.
type RepairJobUpdate struct {
	Status             *JobStatus
	ProblemDescription *string
	DeviceBrand        *string
	DeviceModel        *string
	CompletedAt        *time.Time
	AddPhotoURL        *string
}

func (u RepairJobUpdate) Empty() bool {
	return u.Status == nil &&
		u.ProblemDescription == nil &&
		u.DeviceBrand == nil &&
		u.DeviceModel == nil &&
		u.CompletedAt == nil &&
		u.AddPhotoURL == nil
}
