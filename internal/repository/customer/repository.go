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

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]*model.Customer, error) {
	const op = "repository.customer.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]*model.Customer, 0)
	for cur.Next(ctx) {
		var ent CustomerEntity
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

// Create persists a new customer, assigning the id and the creation
// timestamp. The assigned id is returned once the write is
// acknowledged.
func (r *repository) Create(ctx context.Context, c *model.Customer) (string, error) {
	const op = "repository.customer.Create"

	if c == nil {
		return "", fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ent := EntityFromModel(c)
	ent.ID = uuid.NewString()
	ent.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ent.ID, nil
}

// FindByPhone is a point lookup by exact phone equality. A miss is
// reported as model.ErrCustomerNotFound, not a failure.
func (r *repository) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	const op = "repository.customer.FindByPhone"

	var ent CustomerEntity
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}
