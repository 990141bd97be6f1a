package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// seedCarriers is the development fixture set. Rate schedules are partially
// populated on purpose: the engine must fill the gaps from its defaults.
var seedCarriers = []domain.CarrierProfile{
	{
		ID: "car_speedy", Name: "Speedy Haulage Inc.", Verified: true,
		Rating: 4.8, Reviews: 124, YearsActive: 4,
		Equipment: "53' Dry Van", DOTNumber: "US-88421", Insurance: "$1M Cargo",
		Rates: domain.RateSchedule{PerMile: 1.85},
	},
	{
		ID: "car_uslog", Name: "US Logistics Co.", Verified: true,
		Rating: 4.5, Reviews: 85, YearsActive: 7,
		Equipment: "Box Truck 26'", DOTNumber: "US-99312", Insurance: "$500k Cargo",
		Rates: domain.RateSchedule{PerMile: 1.60, PerCubicFoot: 0.45, PerPound: 0.09},
	},
	{
		ID: "car_prime", Name: "Prime Movers LLC", Verified: true,
		Rating: 4.9, Reviews: 312, YearsActive: 12,
		Equipment: "Reefer (Refrigerated)", DOTNumber: "US-11244", Insurance: "$2M Liability",
		Rates: domain.RateSchedule{PerMile: 2.10, PerCubicFoot: 0.60, PerPound: 0.12},
	},
	{
		ID: "car_bluestar", Name: "Blue Star Freight", Verified: true,
		Rating: 4.2, Reviews: 45, YearsActive: 2,
		Equipment: "Standard Van", DOTNumber: "US-33211", Insurance: "$250k Cargo",
		Rates: domain.RateSchedule{PerMile: 1.50},
	},
}

// SeedCarriers inserts the development carrier fixtures when the collection
// is empty. Idempotent across restarts.
func (r *CarrierRepository) SeedCarriers(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count carriers: %w", err)
	}
	if n > 0 {
		return nil
	}

	docs := make([]interface{}, len(seedCarriers))
	for i, c := range seedCarriers {
		docs[i] = c
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}
