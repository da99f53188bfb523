package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]*model.Product, error) {
	const op = "repository.product.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]*model.Product, 0)
	for cur.Next(ctx) {
		var ent ProductEntity
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

func (r *repository) CreateBatch(ctx context.Context, products []*model.Product) error {
	const op = "repository.product.CreateBatch"

	docs := make([]any, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}

		ent := EntityFromModel(p)
		if ent.ID == "" {
			ent.ID = uuid.NewString()
		}
		docs = append(docs, ent)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateStock replaces the stock quantity of a single product.
func (r *repository) UpdateStock(ctx context.Context, id string, quantity int64) error {
	const op = "repository.product.UpdateStock"

	if id == "" {
		return fmt.Errorf("%s: %w: empty product id", op, model.ErrValidation)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"stock_quantity": quantity}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Count reports how many products exist. The seeder uses it to keep
// bootstrap idempotent.
func (r *repository) Count(ctx context.Context) (int64, error) {
	const op = "repository.product.Count"

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
