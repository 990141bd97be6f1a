package ports

import (
	"context"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// QuoteRequestInput carries one shipment description from the intake layer.
// Required numeric fields are validated by the transport layer; the service
// still fail-fasts on non-positive geometry (ErrInvalidDimensions).
type QuoteRequestInput struct {
	RequestID string
	ShipperID string
	Spec      domain.ShipmentSpec
}

// RankedOffersResult is the ordered offer list returned to the presentation
// layer. Offers are sorted best-first; each entry is directly displayable
// with no further business logic downstream.
type RankedOffersResult struct {
	RequestID     string
	DistanceMiles int
	Offers        []domain.RankedCarrierOffer
	// FromCache is true when the result was served from the quote cache.
	FromCache bool
}

// QuoteService is the engine's single entry point for shippers: it estimates
// the route, quotes every eligible carrier, and returns the ranked offers.
type QuoteService interface {
	RankOffers(ctx context.Context, input QuoteRequestInput) (*RankedOffersResult, error)
}

// OfferScorer orders offers: lower scores rank first. Implementations must be
// deterministic for identical inputs so ranking stays stable.
type OfferScorer interface {
	Score(carrier domain.CarrierProfile, quote domain.Quote) float64
}
