package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

// recentJobsLimit is how many jobs the dashboard previews.
const recentJobsLimit = 5

type AppState interface {
	Snapshot() model.Snapshot
}

// Overview is the dashboard-section payload.
type Overview struct {
	Stats      model.DashboardStats `json:"stats"`
	RecentJobs []*model.RepairJob   `json:"recent_jobs"`
}

type service struct {
	state AppState
	now   func() time.Time
}

func NewDashboardService(state AppState) *service {
	return &service{state: state, now: time.Now}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	snap := s.state.Snapshot()

	return &Overview{
		Stats:      Stats(snap, s.now()),
		RecentJobs: RecentJobs(snap.RepairJobs, recentJobsLimit),
	}, nil
}

// Stats derives the day-scoped counters from a snapshot. The cutoff
// is midnight of "now" in its own location. A completed job with no
// completion timestamp never counts as completed today.
func Stats(snap model.Snapshot, now time.Time) model.DashboardStats {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayRepairs := lo.CountBy(snap.RepairJobs, func(j *model.RepairJob) bool {
		return !j.CreatedAt.Before(cutoff)
	})

	pendingJobs := lo.CountBy(snap.RepairJobs, func(j *model.RepairJob) bool {
		return j.Status == model.StatusPending || j.Status == model.StatusInProgress
	})

	completedToday := lo.CountBy(snap.RepairJobs, func(j *model.RepairJob) bool {
		return j.Status == model.StatusCompleted &&
			j.CompletedAt != nil &&
			!j.CompletedAt.Before(cutoff)
	})

	todaySales := lo.Filter(snap.Sales, func(s *model.Sale, _ int) bool {
		return !s.Date.Before(cutoff)
	})
	revenueToday := lo.SumBy(todaySales, func(s *model.Sale) int64 {
		return s.TotalAmountCents
	})

	return model.DashboardStats{
		TodayRepairs:      todayRepairs,
		PendingJobs:       pendingJobs,
		CompletedToday:    completedToday,
		RevenueTodayCents: revenueToday,
	}
}

// RecentJobs takes the first n jobs in gateway order (newest first by
// the repository's sort contract).
func RecentJobs(jobs []*model.RepairJob, n int) []*model.RepairJob {
	return lo.Slice(jobs, 0, n)
}
