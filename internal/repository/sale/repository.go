package repository

import (
	"context"
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

func NewSaleRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// List returns all sales, newest transaction first. Ordering is part
// of the gateway contract.
func (r *repository) List(ctx context.Context) ([]*model.Sale, error) {
	const op = "repository.sale.List"

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]*model.Sale, 0)
	for cur.Next(ctx) {
		var ent SaleEntity
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

// Create persists a new sale, assigning the id and stamping the
// transaction timestamp.
func (r *repository) Create(ctx context.Context, s *model.Sale) (string, error) {
	const op = "repository.sale.Create"

	if s == nil {
		return "", fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ent := EntityFromModel(s)
	ent.ID = uuid.NewString()
	ent.Date = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ent.ID, nil
}
