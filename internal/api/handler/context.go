package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - carrier role requires a non-empty carrier_id; without it the JWT is
//     structurally valid but operationally unusable, so reject with 401.
func ctxClaims(c echo.Context) (role, carrierID string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	carrierID, _ = c.Get("carrier_id").(string)
	if role == domain.RoleCarrier && carrierID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing carrier identity")
	}

	return role, carrierID, nil
}
