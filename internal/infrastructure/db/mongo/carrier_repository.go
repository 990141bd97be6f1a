package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

const collectionCarriers = "carriers"

// CarrierRepository implements ports.CarrierDirectory on MongoDB.
type CarrierRepository struct {
	col *mongo.Collection
}

func NewCarrierRepository(db *mongo.Database) *CarrierRepository {
	return &CarrierRepository{col: db.Collection(collectionCarriers)}
}

// ListVerified returns every carrier whose verification flag is set. The
// ranking service relies on this filter but applies its own as well, so an
// unverified carrier can never leak into an offer list.
func (r *CarrierRepository) ListVerified(ctx context.Context) ([]domain.CarrierProfile, error) {
	return r.find(ctx, bson.M{"verified": true})
}

// List returns all carriers, for admin views.
func (r *CarrierRepository) List(ctx context.Context) ([]domain.CarrierProfile, error) {
	return r.find(ctx, bson.M{})
}

func (r *CarrierRepository) find(ctx context.Context, filter bson.M) ([]domain.CarrierProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var carriers []domain.CarrierProfile
	if err := cur.All(ctx, &carriers); err != nil {
		return nil, err
	}
	return carriers, nil
}

func (r *CarrierRepository) FindByID(ctx context.Context, id string) (*domain.CarrierProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.CarrierProfile
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarrierNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpdateRates replaces the carrier's rate schedule.
func (r *CarrierRepository) UpdateRates(ctx context.Context, id string, rates domain.RateSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rates": rates}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCarrierNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the carriers collection.
func (r *CarrierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "verified", Value: 1}}},
		{Keys: bson.D{{Key: "dot_number", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
