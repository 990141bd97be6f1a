package service

import (
	"sort"
	"sync"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// DefaultMinTotalCharge is the price floor applied to every offer. Very
// short or very light shipments would otherwise produce totals no carrier
// would actually run a truck for.
const DefaultMinTotalCharge = 200.0

// Ranker quotes every eligible carrier for a shipment and orders the offers
// best-first. Pure over its inputs: identical inputs always produce the same
// ordered list.
type Ranker struct {
	calc           *QuoteCalculator
	scorer         ports.OfferScorer
	minTotalCharge float64
}

// NewRanker builds a Ranker. A non-positive floor falls back to
// DefaultMinTotalCharge.
func NewRanker(calc *QuoteCalculator, scorer ports.OfferScorer, minTotalCharge float64) *Ranker {
	if minTotalCharge <= 0 {
		minTotalCharge = DefaultMinTotalCharge
	}
	return &Ranker{calc: calc, scorer: scorer, minTotalCharge: minTotalCharge}
}

// RankOffers quotes each verified carrier and returns the offers sorted by
// match score (ascending), tie-broken by carrier ID so the order is total
// and deterministic. Unverified carriers are excluded entirely, not merely
// down-ranked. An empty carrier list yields an empty (non-nil) result.
//
// Per-carrier quoting has no data dependency between carriers, so it fans
// out across goroutines; only the final sort order is significant.
func (r *Ranker) RankOffers(spec domain.ShipmentSpec, distanceMiles int, carriers []domain.CarrierProfile) []domain.RankedCarrierOffer {
	eligible := make([]domain.CarrierProfile, 0, len(carriers))
	for _, c := range carriers {
		if c.Verified {
			eligible = append(eligible, c)
		}
	}

	offers := make([]domain.RankedCarrierOffer, len(eligible))
	var wg sync.WaitGroup
	for i, carrier := range eligible {
		wg.Add(1)
		go func(i int, carrier domain.CarrierProfile) {
			defer wg.Done()
			quote := r.applyFloor(r.calc.Quote(spec, carrier.Rates, distanceMiles))
			offers[i] = domain.RankedCarrierOffer{
				Carrier: carrier,
				Quote:   quote,
				Score:   r.scorer.Score(carrier, quote),
			}
		}(i, carrier)
	}
	wg.Wait()

	sort.SliceStable(offers, func(a, b int) bool {
		if offers[a].Score != offers[b].Score {
			return offers[a].Score < offers[b].Score
		}
		return offers[a].Carrier.ID < offers[b].Carrier.ID
	})

	return offers
}

// applyFloor raises an under-floor total up to the minimum charge. The lift
// goes into the base charge so the quote stays the sum of exactly two
// components and the breakdown remains reconstructable.
func (r *Ranker) applyFloor(q domain.Quote) domain.Quote {
	if q.TotalCharge >= r.minTotalCharge {
		return q
	}
	q.BaseCharge = round2(r.minTotalCharge - q.MileageCharge)
	q.TotalCharge = round2(q.BaseCharge + q.MileageCharge)
	q.Breakdown = breakdown(q.MileageCharge, q.Basis, q.BaseCharge)
	return q
}
