package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type stubState struct {
	snap model.Snapshot
}

func (s *stubState) Snapshot() model.Snapshot { return s.snap }

func TestStats(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	type testCase struct {
		name string
		snap model.Snapshot
		want model.DashboardStats
	}

	tests := []testCase{
		{
			name: "empty snapshot: all counters zero",
			snap: model.Snapshot{},
			want: model.DashboardStats{},
		},
		{
			name: "jobs split by creation day",
			snap: model.Snapshot{
				RepairJobs: []*model.RepairJob{
					{Status: model.StatusPending, CreatedAt: today},
					{Status: model.StatusDelivered, CreatedAt: today},
					{Status: model.StatusPending, CreatedAt: yesterday},
				},
			},
			want: model.DashboardStats{
				TodayRepairs: 2,
				PendingJobs:  2,
			},
		},
		{
			name: "pending counts pending and in_progress regardless of day",
			snap: model.Snapshot{
				RepairJobs: []*model.RepairJob{
					{Status: model.StatusPending, CreatedAt: yesterday},
					{Status: model.StatusInProgress, CreatedAt: yesterday},
					{Status: model.StatusCompleted, CreatedAt: yesterday},
					{Status: model.StatusDelivered, CreatedAt: yesterday},
				},
			},
			want: model.DashboardStats{
				PendingJobs: 2,
			},
		},
		{
			name: "completed today needs status, timestamp and same day",
			snap: model.Snapshot{
				RepairJobs: []*model.RepairJob{
					{Status: model.StatusCompleted, CreatedAt: yesterday, CompletedAt: lo.ToPtr(today)},
					{Status: model.StatusCompleted, CreatedAt: yesterday, CompletedAt: lo.ToPtr(yesterday)},
					{Status: model.StatusCompleted, CreatedAt: yesterday}, // no timestamp
					{Status: model.StatusDelivered, CreatedAt: yesterday, CompletedAt: lo.ToPtr(today)},
				},
			},
			want: model.DashboardStats{
				CompletedToday: 1,
			},
		},
		{
			name: "revenue sums only today's sales",
			snap: model.Snapshot{
				Sales: []*model.Sale{
					{TotalAmountCents: 150000, Date: today},
					{TotalAmountCents: 30000, Date: now},
					{TotalAmountCents: 999900, Date: yesterday},
				},
			},
			want: model.DashboardStats{
				RevenueTodayCents: 180000,
			},
		},
		{
			name: "midnight boundary is inclusive",
			snap: model.Snapshot{
				RepairJobs: []*model.RepairJob{
					{Status: model.StatusDelivered, CreatedAt: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)},
				},
			},
			want: model.DashboardStats{
				TodayRepairs: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Stats(tt.snap, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsTodayNeverExceedsTotal(t *testing.T) {
	t.Parallel()

	jobs := make([]*model.RepairJob, 0, 20)
	for range 20 {
		jobs = append(jobs, &model.RepairJob{
			Status:    model.StatusPending,
			CreatedAt: gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
		})
	}

	got := Stats(model.Snapshot{RepairJobs: jobs}, time.Now())
	assert.LessOrEqual(t, got.TodayRepairs, len(jobs))
}

func TestStatsOldJobDoesNotChangeToday(t *testing.T) {
	t.Parallel()

	now := time.Now()
	jobs := make([]*model.RepairJob, 0, 10)
	for range 10 {
		jobs = append(jobs, &model.RepairJob{
			Status:    model.StatusPending,
			CreatedAt: gofakeit.DateRange(now.AddDate(0, -1, 0), now),
		})
	}

	before := Stats(model.Snapshot{RepairJobs: jobs}, now)

	old := &model.RepairJob{
		Status:    model.StatusPending,
		CreatedAt: now.AddDate(0, 0, -2),
	}
	after := Stats(model.Snapshot{RepairJobs: append(jobs, old)}, now)

	assert.Equal(t, before.TodayRepairs, after.TodayRepairs)
	assert.Equal(t, before.PendingJobs+1, after.PendingJobs)
}

func TestRecentJobs(t *testing.T) {
	t.Parallel()

	jobs := make([]*model.RepairJob, 7)
	for i := range jobs {
		jobs[i] = &model.RepairJob{ID: gofakeit.UUID()}
	}

	t.Run("takes the first five in order", func(t *testing.T) {
		t.Parallel()

		got := RecentJobs(jobs, 5)
		require.Len(t, got, 5)
		assert.Equal(t, jobs[:5], got)
	})

	t.Run("short input returned whole", func(t *testing.T) {
		t.Parallel()

		got := RecentJobs(jobs[:3], 5)
		assert.Equal(t, jobs[:3], got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, RecentJobs(nil, 5))
	})
}

func TestServiceOverview(t *testing.T) {
	t.Parallel()

	jobs := make([]*model.RepairJob, 7)
	for i := range jobs {
		jobs[i] = &model.RepairJob{ID: gofakeit.UUID(), Status: model.StatusPending, CreatedAt: time.Now()}
	}

	svc := NewDashboardService(&stubState{snap: model.Snapshot{RepairJobs: jobs}})

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, len(jobs), got.Stats.TodayRepairs)
	assert.Len(t, got.RecentJobs, recentJobsLimit)
	assert.Equal(t, jobs[:recentJobsLimit], got.RecentJobs)
}
