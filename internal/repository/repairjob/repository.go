package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewRepairJobRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// sortNewestFirst is the ordering contract of this gateway: repair
// jobs are always returned newest first, so "recent N" views may take
// a prefix without re-sorting.
func sortNewestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func (r *repository) List(ctx context.Context) ([]*model.RepairJob, error) {
	return r.find(ctx, bson.M{})
}

func (r *repository) ListByStatus(ctx context.Context, status model.JobStatus) ([]*model.RepairJob, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *repository) find(ctx context.Context, filter bson.M) ([]*model.RepairJob, error) {
	const op = "repository.repairjob.find"

	cur, err := r.coll.Find(ctx, filter, sortNewestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]*model.RepairJob, 0)
	for cur.Next(ctx) {
		var ent RepairJobEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// Create persists a new repair job, assigning the id and the creation
// timestamp.
func (r *repository) Create(ctx context.Context, j *model.RepairJob) (string, error) {
	const op = "repository.repairjob.Create"

	if j == nil {
		return "", fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ent := EntityFromModel(j)
	ent.ID = uuid.NewString()
	ent.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ent.ID, nil
}

// Update merges only the provided fields into the stored job.
func (r *repository) Update(ctx context.Context, id string, upd model.RepairJobUpdate) error {
	const op = "repository.repairjob.Update"

	if id == "" {
		return fmt.Errorf("%s: %w: empty job id", op, model.ErrValidation)
	}
	if upd.Empty() {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, BuildUpdateDocument(upd))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrJobNotFound
	}

	return nil
}

func (r *repository) JobByID(ctx context.Context, id string) (*model.RepairJob, error) {
	const op = "repository.repairjob.JobByID"

	var ent RepairJobEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrJobNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}
