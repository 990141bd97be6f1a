package ports

import (
	"context"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, role, carrierID string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
