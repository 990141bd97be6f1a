package ports

import (
	"context"
	"time"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// QuoteAuditInput is the DTO handed from the quoting path to the audit
// pipeline. It is queued and processed off the request path.
type QuoteAuditInput struct {
	RequestID     string
	ShipperID     string
	Spec          domain.ShipmentSpec
	DistanceMiles int
	OfferCount    int
	BestTotal     float64
	Timestamp     time.Time
}

// AuditService records quote requests for the shipper history views.
type AuditService interface {
	Record(ctx context.Context, input QuoteAuditInput) error
}

// AuditRepository persists quote audit records.
type AuditRepository interface {
	Insert(ctx context.Context, audit *domain.QuoteAudit) error
	// ListByShipper returns the most recent records for one shipper,
	// newest first, capped at limit.
	ListByShipper(ctx context.Context, shipperID string, limit int) ([]*domain.QuoteAudit, error)
}
