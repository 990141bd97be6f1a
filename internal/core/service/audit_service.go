package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists quote audit records.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single quote audit record. Records without a request ID
// are dropped; everything else is stored as-is.
func (s *auditService) Record(ctx context.Context, in ports.QuoteAuditInput) error {
	if in.RequestID == "" {
		s.log.Warn().Str("shipper_id", in.ShipperID).Msg("audit record without request id dropped")
		return nil
	}

	audit := &domain.QuoteAudit{
		RequestID:     in.RequestID,
		ShipperID:     in.ShipperID,
		Spec:          in.Spec,
		DistanceMiles: in.DistanceMiles,
		OfferCount:    in.OfferCount,
		BestTotal:     in.BestTotal,
		CreatedAt:     in.Timestamp,
	}

	if err := s.repo.Insert(ctx, audit); err != nil {
		return fmt.Errorf("record quote audit: %w", err)
	}

	s.log.Debug().
		Str("request_id", in.RequestID).
		Str("shipper_id", in.ShipperID).
		Int("offers", in.OfferCount).
		Msg("quote audit recorded")

	return nil
}
