package service

import (
	"testing"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

func newTestRanker(scorerName string, floor float64) *Ranker {
	return NewRanker(newTestCalculator(), NewScorerByName(scorerName, DefaultScoringConfig), floor)
}

var rankerSpec = domain.ShipmentSpec{
	OriginCode: "10001",
	DestCode:   "90001",
	WeightLb:   2000,
	LengthFt:   8,
	WidthFt:    4,
	HeightFt:   4,
}

func TestRanker_ExcludesUnverifiedCarriers(t *testing.T) {
	ranker := newTestRanker("cheapest", DefaultMinTotalCharge)

	carriers := []domain.CarrierProfile{
		{ID: "car_a", Name: "Verified Freight", Verified: true, Rates: domain.RateSchedule{PerMile: 2.00}},
		{ID: "car_b", Name: "Unvetted Movers", Verified: false, Rates: domain.RateSchedule{PerMile: 0.10}},
	}

	offers := ranker.RankOffers(rankerSpec, 2446, carriers)

	if len(offers) != 1 {
		t.Fatalf("want 1 offer, got %d", len(offers))
	}
	if offers[0].Carrier.ID != "car_a" {
		t.Errorf("unverified carrier must never appear, got %s", offers[0].Carrier.ID)
	}
}

func TestRanker_EmptyDirectoryYieldsEmptyList(t *testing.T) {
	ranker := newTestRanker("cheapest", DefaultMinTotalCharge)

	offers := ranker.RankOffers(rankerSpec, 2446, nil)

	if offers == nil {
		t.Fatal("want empty non-nil slice")
	}
	if len(offers) != 0 {
		t.Errorf("want 0 offers, got %d", len(offers))
	}
}

func TestRanker_CheapestOrdering(t *testing.T) {
	ranker := newTestRanker("cheapest", DefaultMinTotalCharge)

	carriers := []domain.CarrierProfile{
		{ID: "car_prime", Verified: true, Rates: domain.RateSchedule{PerMile: 2.10, PerPound: 0.12}},
		{ID: "car_uslog", Verified: true, Rates: domain.RateSchedule{PerMile: 1.60, PerPound: 0.09}},
		{ID: "car_speedy", Verified: true, Rates: domain.RateSchedule{PerMile: 1.85}},
	}

	offers := ranker.RankOffers(rankerSpec, 2446, carriers)

	if len(offers) != 3 {
		t.Fatalf("want 3 offers, got %d", len(offers))
	}
	for i := 1; i < len(offers); i++ {
		if offers[i].Quote.TotalCharge < offers[i-1].Quote.TotalCharge {
			t.Errorf("offers out of order at %d: %v before %v", i,
				offers[i-1].Quote.TotalCharge, offers[i].Quote.TotalCharge)
		}
	}
	if offers[0].Carrier.ID != "car_uslog" {
		t.Errorf("cheapest first: want car_uslog, got %s", offers[0].Carrier.ID)
	}
}

func TestRanker_TieBreaksByCarrierID(t *testing.T) {
	ranker := newTestRanker("cheapest", DefaultMinTotalCharge)

	rates := domain.RateSchedule{PerMile: 2.00, PerPound: 0.10}
	carriers := []domain.CarrierProfile{
		{ID: "car_zeta", Verified: true, Rates: rates},
		{ID: "car_alpha", Verified: true, Rates: rates},
	}

	offers := ranker.RankOffers(rankerSpec, 2446, carriers)

	if len(offers) != 2 {
		t.Fatalf("want 2 offers, got %d", len(offers))
	}
	if offers[0].Carrier.ID != "car_alpha" || offers[1].Carrier.ID != "car_zeta" {
		t.Errorf("tie must break by ID: got [%s, %s]", offers[0].Carrier.ID, offers[1].Carrier.ID)
	}
}

func TestRanker_PriceFloorLiftsBaseCharge(t *testing.T) {
	ranker := newTestRanker("cheapest", 200)

	// 1 lb in 1 ft³ over 10 miles: raw total is $20.50, far below the floor.
	spec := domain.ShipmentSpec{WeightLb: 1, LengthFt: 1, WidthFt: 1, HeightFt: 1}
	carriers := []domain.CarrierProfile{
		{ID: "car_a", Verified: true, Rates: domain.RateSchedule{PerMile: 2.00, PerCubicFoot: 0.50}},
	}

	offers := ranker.RankOffers(spec, 10, carriers)

	if len(offers) != 1 {
		t.Fatalf("want 1 offer, got %d", len(offers))
	}
	q := offers[0].Quote
	if q.TotalCharge != 200.00 {
		t.Errorf("total: want floor 200.00, got %v", q.TotalCharge)
	}
	if q.MileageCharge != 20.00 {
		t.Errorf("mileage must be untouched: want 20.00, got %v", q.MileageCharge)
	}
	if q.BaseCharge != 180.00 {
		t.Errorf("base must absorb the lift: want 180.00, got %v", q.BaseCharge)
	}
	if want := "Mileage ($20) + VOLUME Charge ($180)"; q.Breakdown != want {
		t.Errorf("breakdown: want %q, got %q", want, q.Breakdown)
	}
}

func TestRanker_FloorDoesNotTouchCompliantQuotes(t *testing.T) {
	ranker := newTestRanker("cheapest", 200)

	offers := ranker.RankOffers(rankerSpec, 2446, []domain.CarrierProfile{
		{ID: "car_a", Verified: true, Rates: domain.RateSchedule{PerMile: 2.00, PerPound: 0.10}},
	})

	if offers[0].Quote.TotalCharge != 5092.00 {
		t.Errorf("total: want 5092.00, got %v", offers[0].Quote.TotalCharge)
	}
}

func TestRanker_WeightedScorerRewardsRatingAndTenure(t *testing.T) {
	ranker := newTestRanker("weighted", DefaultMinTotalCharge)

	// Same price, so rating and tenure must decide the order.
	rates := domain.RateSchedule{PerMile: 2.00, PerPound: 0.10}
	carriers := []domain.CarrierProfile{
		{ID: "car_new", Verified: true, Rating: 3.0, YearsActive: 1, Rates: rates},
		{ID: "car_proven", Verified: true, Rating: 4.9, YearsActive: 12, Rates: rates},
	}

	offers := ranker.RankOffers(rankerSpec, 2446, carriers)

	if offers[0].Carrier.ID != "car_proven" {
		t.Errorf("at equal price the better-rated carrier wins: got %s first", offers[0].Carrier.ID)
	}
	if offers[0].Score >= offers[1].Score {
		t.Errorf("lower score must rank first: %v vs %v", offers[0].Score, offers[1].Score)
	}
}

func TestRanker_Deterministic(t *testing.T) {
	ranker := newTestRanker("weighted", DefaultMinTotalCharge)

	carriers := []domain.CarrierProfile{
		{ID: "car_a", Verified: true, Rating: 4.8, YearsActive: 4, Rates: domain.RateSchedule{PerMile: 1.85}},
		{ID: "car_b", Verified: true, Rating: 4.5, YearsActive: 7, Rates: domain.RateSchedule{PerMile: 1.60, PerCubicFoot: 0.45, PerPound: 0.09}},
		{ID: "car_c", Verified: true, Rating: 4.2, YearsActive: 2, Rates: domain.RateSchedule{PerMile: 1.50}},
	}

	first := ranker.RankOffers(rankerSpec, 2446, carriers)
	second := ranker.RankOffers(rankerSpec, 2446, carriers)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Carrier.ID != second[i].Carrier.ID || first[i].Score != second[i].Score {
			t.Errorf("position %d differs across runs: %s/%v vs %s/%v", i,
				first[i].Carrier.ID, first[i].Score, second[i].Carrier.ID, second[i].Score)
		}
	}
}
