package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

const collectionQuoteAudits = "quote_audits"

// AuditRepository persists quote audit records.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionQuoteAudits)}
}

func (r *AuditRepository) Insert(ctx context.Context, audit *domain.QuoteAudit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if audit.ID == "" {
		audit.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, audit)
	return err
}

// ListByShipper returns the shipper's most recent quote requests, newest
// first.
func (r *AuditRepository) ListByShipper(ctx context.Context, shipperID string, limit int) ([]*domain.QuoteAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"shipper_id": shipperID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var audits []*domain.QuoteAudit
	if err := cur.All(ctx, &audits); err != nil {
		return nil, err
	}
	return audits, nil
}

// EnsureIndexes creates necessary indexes on the quote_audits collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shipper_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
