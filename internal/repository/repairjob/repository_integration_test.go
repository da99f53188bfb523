//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

const mongoImage = "mongo:8"

func setupCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, mongoImage)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, tc.TerminateContainer(ctr))
	})

	dsn, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(options.Client().ApplyURI(dsn))
	require.NoError(t, err)
	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		require.NoError(t, client.Disconnect(disconnectCtx))
	})

	return client.Database("repair-shop-test").Collection("repair_jobs")
}

func newJob() *model.RepairJob {
	return &model.RepairJob{
		CustomerID:         gofakeit.UUID(),
		CustomerName:       gofakeit.Name(),
		CustomerPhone:      gofakeit.Phone(),
		DeviceBrand:        gofakeit.Company(),
		DeviceModel:        gofakeit.ProductName(),
		ProblemDescription: gofakeit.Sentence(5),
		Status:             model.StatusPending,
	}
}

func TestRepairJobRepository(t *testing.T) {
	repo := NewRepairJobRepository(setupCollection(t))
	ctx := context.Background()

	t.Run("create then fetch by id", func(t *testing.T) {
		want := newJob()
		id, err := repo.Create(ctx, want)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, err := repo.JobByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, want.CustomerID, got.CustomerID)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("list is newest first", func(t *testing.T) {
		first, err := repo.Create(ctx, newJob())
		require.NoError(t, err)

		// Distinct creation timestamps for a stable sort.
		time.Sleep(5 * time.Millisecond)

		second, err := repo.Create(ctx, newJob())
		require.NoError(t, err)

		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 2)

		firstIdx := lo.IndexOf(lo.Map(got, func(j *model.RepairJob, _ int) string { return j.ID }), first)
		secondIdx := lo.IndexOf(lo.Map(got, func(j *model.RepairJob, _ int) string { return j.ID }), second)
		assert.Less(t, secondIdx, firstIdx)
	})

	t.Run("status filter", func(t *testing.T) {
		j := newJob()
		j.Status = model.StatusDelivered
		id, err := repo.Create(ctx, j)
		require.NoError(t, err)

		got, err := repo.ListByStatus(ctx, model.StatusDelivered)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID)
	})

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		want := newJob()
		id, err := repo.Create(ctx, want)
		require.NoError(t, err)

		completedAt := time.Now().UTC().Truncate(time.Millisecond)
		err = repo.Update(ctx, id, model.RepairJobUpdate{
			Status:      lo.ToPtr(model.StatusCompleted),
			CompletedAt: lo.ToPtr(completedAt),
		})
		require.NoError(t, err)

		got, err := repo.JobByID(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, model.StatusCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.WithinDuration(t, completedAt, *got.CompletedAt, time.Second)
		assert.Equal(t, want.ProblemDescription, got.ProblemDescription)
	})

	t.Run("photo urls accumulate", func(t *testing.T) {
		id, err := repo.Create(ctx, newJob())
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, id, model.RepairJobUpdate{AddPhotoURL: lo.ToPtr("u1")}))
		require.NoError(t, repo.Update(ctx, id, model.RepairJobUpdate{AddPhotoURL: lo.ToPtr("u2")}))

		got, err := repo.JobByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, got.PhotoURLs)
	})

	t.Run("update of a missing job is a not-found", func(t *testing.T) {
		err := repo.Update(ctx, gofakeit.UUID(), model.RepairJobUpdate{
			Status: lo.ToPtr(model.StatusInProgress),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrJobNotFound)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, gofakeit.UUID(), model.RepairJobUpdate{}))
	})
}
