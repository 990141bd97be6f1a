package ports

import (
	"context"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// CarrierDirectory is the carrier-directory collaborator: it owns carrier
// profiles and their rate schedules. The engine only ever reads snapshots
// from it; rate updates come through the carrier-facing API.
type CarrierDirectory interface {
	// ListVerified returns every carrier with the verification flag set.
	ListVerified(ctx context.Context) ([]domain.CarrierProfile, error)
	FindByID(ctx context.Context, id string) (*domain.CarrierProfile, error)
	// UpdateRates replaces the carrier's rate schedule.
	UpdateRates(ctx context.Context, id string, rates domain.RateSchedule) error
	// List returns all carriers regardless of verification, for admin views.
	List(ctx context.Context) ([]domain.CarrierProfile, error)
}
