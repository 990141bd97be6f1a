package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// QuoteCache abstracts the ranked-result cache (Redis). A nil result with a
// nil error is a miss.
type QuoteCache interface {
	Get(ctx context.Context, spec domain.ShipmentSpec) (*ports.RankedOffersResult, error)
	Set(ctx context.Context, spec domain.ShipmentSpec, result *ports.RankedOffersResult) error
}

// AuditQueue accepts quote audit records for asynchronous persistence.
type AuditQueue interface {
	Enqueue(input ports.QuoteAuditInput)
}

type quoteService struct {
	distance  ports.DistanceEstimator
	directory ports.CarrierDirectory
	ranker    *Ranker
	cache     QuoteCache
	audits    AuditQueue
	log       zerolog.Logger
}

// NewQuoteService wires the engine's entry point. cache and audits may be
// nil; the service then skips caching and audit recording.
func NewQuoteService(
	distance ports.DistanceEstimator,
	directory ports.CarrierDirectory,
	ranker *Ranker,
	cache QuoteCache,
	audits AuditQueue,
	log zerolog.Logger,
) ports.QuoteService {
	return &quoteService{
		distance:  distance,
		directory: directory,
		ranker:    ranker,
		cache:     cache,
		audits:    audits,
		log:       log,
	}
}

// RankOffers estimates the route, quotes every verified carrier, and returns
// the ordered offer list. The only input it actively rejects is non-positive
// geometry; unknown postal codes and incomplete rate schedules degrade to
// documented defaults instead of failing.
func (s *quoteService) RankOffers(ctx context.Context, input ports.QuoteRequestInput) (*ports.RankedOffersResult, error) {
	if err := input.Spec.Validate(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, input.Spec)
		if err != nil {
			s.log.Warn().Err(err).Msg("quote cache read failed, computing fresh")
		} else if cached != nil {
			cached.RequestID = input.RequestID
			cached.FromCache = true
			s.log.Debug().Str("request_id", input.RequestID).Msg("ranked offers served from cache")
			return cached, nil
		}
	}

	miles := s.distance.EstimateMiles(input.Spec.OriginCode, input.Spec.DestCode)

	carriers, err := s.directory.ListVerified(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("carrier directory lookup failed")
		return nil, err
	}

	offers := s.ranker.RankOffers(input.Spec, miles, carriers)

	result := &ports.RankedOffersResult{
		RequestID:     input.RequestID,
		DistanceMiles: miles,
		Offers:        offers,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, input.Spec, result); err != nil {
			s.log.Warn().Err(err).Msg("quote cache write failed")
		}
	}

	if s.audits != nil {
		audit := ports.QuoteAuditInput{
			RequestID:     input.RequestID,
			ShipperID:     input.ShipperID,
			Spec:          input.Spec,
			DistanceMiles: miles,
			OfferCount:    len(offers),
			Timestamp:     time.Now().UTC(),
		}
		if len(offers) > 0 {
			audit.BestTotal = offers[0].Quote.TotalCharge
		}
		s.audits.Enqueue(audit)
	}

	s.log.Info().
		Str("request_id", input.RequestID).
		Int("distance_miles", miles).
		Int("offers", len(offers)).
		Msg("ranked offers computed")

	return result, nil
}
