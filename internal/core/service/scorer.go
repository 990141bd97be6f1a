package service

import (
	"strings"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// ScoringConfig holds the match-score weights. Weights are a deployment
// policy, not engine logic, so they live in configuration.
type ScoringConfig struct {
	PriceWeight  float64
	RatingWeight float64
	TenureWeight float64
}

// DefaultScoringConfig balances price dominance with a meaningful reward for
// well-rated, long-verified carriers.
var DefaultScoringConfig = ScoringConfig{
	PriceWeight:  1.0,
	RatingWeight: 25.0,
	TenureWeight: 5.0,
}

// ratingDistanceNormMiles normalizes route distance for the rating term: at
// this distance the rating's influence doubles relative to a zero-mile route.
const ratingDistanceNormMiles = 1000.0

// WeightedScorer is the default match-score strategy: lower is better.
// Price raises the score; rating (weighted up on longer hauls, where carrier
// reliability matters more) and verification tenure lower it.
type WeightedScorer struct {
	cfg ScoringConfig
}

func NewWeightedScorer(cfg ScoringConfig) *WeightedScorer {
	if cfg.PriceWeight <= 0 {
		cfg.PriceWeight = DefaultScoringConfig.PriceWeight
	}
	return &WeightedScorer{cfg: cfg}
}

func (s *WeightedScorer) Score(carrier domain.CarrierProfile, quote domain.Quote) float64 {
	distanceAdj := 1 + float64(quote.DistanceMiles)/ratingDistanceNormMiles
	return s.cfg.PriceWeight*quote.TotalCharge -
		s.cfg.RatingWeight*carrier.Rating*distanceAdj -
		s.cfg.TenureWeight*float64(carrier.YearsActive)
}

// CheapestScorer ranks purely on total charge. Useful as a predictable
// strategy for price-sensitive deployments and for tests.
type CheapestScorer struct{}

func (CheapestScorer) Score(_ domain.CarrierProfile, quote domain.Quote) float64 {
	return quote.TotalCharge
}

// NewScorerByName returns a scoring strategy by configured name. Unknown
// names fall back to the weighted strategy.
func NewScorerByName(name string, cfg ScoringConfig) ports.OfferScorer {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cheapest":
		return CheapestScorer{}
	default:
		return NewWeightedScorer(cfg)
	}
}
