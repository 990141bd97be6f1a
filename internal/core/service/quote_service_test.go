package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

type stubDistance struct {
	miles int
	calls int
}

func (s *stubDistance) EstimateMiles(_, _ string) int {
	s.calls++
	return s.miles
}

type stubDirectory struct {
	carriers []domain.CarrierProfile
	err      error
	calls    int
}

func (s *stubDirectory) ListVerified(context.Context) ([]domain.CarrierProfile, error) {
	s.calls++
	return s.carriers, s.err
}

func (s *stubDirectory) List(context.Context) ([]domain.CarrierProfile, error) {
	return s.carriers, s.err
}

func (s *stubDirectory) FindByID(_ context.Context, id string) (*domain.CarrierProfile, error) {
	for i := range s.carriers {
		if s.carriers[i].ID == id {
			return &s.carriers[i], nil
		}
	}
	return nil, domain.ErrCarrierNotFound
}

func (s *stubDirectory) UpdateRates(context.Context, string, domain.RateSchedule) error {
	return nil
}

type memoryCache struct {
	stored *ports.RankedOffersResult
	getErr error
	setErr error
}

func (m *memoryCache) Get(context.Context, domain.ShipmentSpec) (*ports.RankedOffersResult, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.stored, nil
}

func (m *memoryCache) Set(_ context.Context, _ domain.ShipmentSpec, r *ports.RankedOffersResult) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.stored = r
	return nil
}

type recordingQueue struct {
	inputs []ports.QuoteAuditInput
}

func (r *recordingQueue) Enqueue(input ports.QuoteAuditInput) {
	r.inputs = append(r.inputs, input)
}

func newServiceUnderTest(dir *stubDirectory, cache QuoteCache, audits AuditQueue) ports.QuoteService {
	return NewQuoteService(
		&stubDistance{miles: 2446},
		dir,
		newTestRanker("cheapest", DefaultMinTotalCharge),
		cache,
		audits,
		zerolog.Nop(),
	)
}

func validInput() ports.QuoteRequestInput {
	return ports.QuoteRequestInput{
		RequestID: "req-1",
		ShipperID: "acme_shipping",
		Spec:      rankerSpec,
	}
}

func TestQuoteService_RejectsInvalidDimensions(t *testing.T) {
	svc := newServiceUnderTest(&stubDirectory{}, nil, nil)

	input := validInput()
	input.Spec.HeightFt = 0

	_, err := svc.RankOffers(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidDimensions) {
		t.Fatalf("want ErrInvalidDimensions, got %v", err)
	}
}

func TestQuoteService_RanksVerifiedCarriers(t *testing.T) {
	dir := &stubDirectory{carriers: []domain.CarrierProfile{
		{ID: "car_uslog", Verified: true, Rates: domain.RateSchedule{PerMile: 1.60, PerPound: 0.09}},
		{ID: "car_prime", Verified: true, Rates: domain.RateSchedule{PerMile: 2.10, PerPound: 0.12}},
	}}
	audits := &recordingQueue{}
	svc := newServiceUnderTest(dir, &memoryCache{}, audits)

	result, err := svc.RankOffers(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DistanceMiles != 2446 {
		t.Errorf("distance: want 2446, got %d", result.DistanceMiles)
	}
	if result.FromCache {
		t.Error("first computation must not be marked as cached")
	}
	if len(result.Offers) != 2 {
		t.Fatalf("want 2 offers, got %d", len(result.Offers))
	}
	if result.Offers[0].Carrier.ID != "car_uslog" {
		t.Errorf("cheapest first: want car_uslog, got %s", result.Offers[0].Carrier.ID)
	}

	if len(audits.inputs) != 1 {
		t.Fatalf("want 1 audit record, got %d", len(audits.inputs))
	}
	audit := audits.inputs[0]
	if audit.RequestID != "req-1" || audit.ShipperID != "acme_shipping" {
		t.Errorf("audit identity wrong: %+v", audit)
	}
	if audit.OfferCount != 2 {
		t.Errorf("audit offer count: want 2, got %d", audit.OfferCount)
	}
	if audit.BestTotal != result.Offers[0].Quote.TotalCharge {
		t.Errorf("audit best total: want %v, got %v", result.Offers[0].Quote.TotalCharge, audit.BestTotal)
	}
}

func TestQuoteService_EmptyDirectoryIsNotAnError(t *testing.T) {
	svc := newServiceUnderTest(&stubDirectory{}, nil, nil)

	result, err := svc.RankOffers(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Offers) != 0 {
		t.Errorf("want 0 offers, got %d", len(result.Offers))
	}
}

func TestQuoteService_DirectoryErrorPropagates(t *testing.T) {
	wantErr := errors.New("mongo unavailable")
	svc := newServiceUnderTest(&stubDirectory{err: wantErr}, nil, nil)

	_, err := svc.RankOffers(context.Background(), validInput())
	if !errors.Is(err, wantErr) {
		t.Fatalf("want directory error, got %v", err)
	}
}

func TestQuoteService_SecondCallServedFromCache(t *testing.T) {
	dir := &stubDirectory{carriers: []domain.CarrierProfile{
		{ID: "car_a", Verified: true, Rates: domain.RateSchedule{PerMile: 2.00}},
	}}
	cache := &memoryCache{}
	svc := newServiceUnderTest(dir, cache, nil)

	if _, err := svc.RankOffers(context.Background(), validInput()); err != nil {
		t.Fatalf("first call: %v", err)
	}

	input := validInput()
	input.RequestID = "req-2"
	result, err := svc.RankOffers(context.Background(), input)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !result.FromCache {
		t.Error("second identical request must be served from cache")
	}
	if result.RequestID != "req-2" {
		t.Errorf("cached result must carry the new request ID, got %s", result.RequestID)
	}
	if dir.calls != 1 {
		t.Errorf("directory must not be hit on a cache hit, got %d calls", dir.calls)
	}
}

func TestQuoteService_CacheFailureDegradesToCompute(t *testing.T) {
	dir := &stubDirectory{carriers: []domain.CarrierProfile{
		{ID: "car_a", Verified: true, Rates: domain.RateSchedule{PerMile: 2.00}},
	}}
	cache := &memoryCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := newServiceUnderTest(dir, cache, nil)

	result, err := svc.RankOffers(context.Background(), validInput())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(result.Offers) != 1 {
		t.Errorf("want 1 offer, got %d", len(result.Offers))
	}
}
