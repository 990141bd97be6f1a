package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// CarrierHandler handles carrier directory operations: admin listings and
// carrier-side rate schedule management.
type CarrierHandler struct {
	directory ports.CarrierDirectory
}

func NewCarrierHandler(directory ports.CarrierDirectory) *CarrierHandler {
	return &CarrierHandler{directory: directory}
}

// List handles GET /v1/carriers.
//
// @Summary      List all carriers
// @Tags         carriers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CarrierProfile
// @Failure      403  {object}  map[string]string
// @Router       /v1/carriers [get]
func (h *CarrierHandler) List(c echo.Context) error {
	carriers, err := h.directory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, carriers)
}

// UpdateRates handles PUT /v1/carriers/:id/rates. A carrier may only update
// its own schedule; admins may update any.
//
// @Summary      Update a carrier's rate schedule
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Carrier ID"
// @Param        body  body      updateRatesRequest  true  "New rate schedule"
// @Success      200   {object}  domain.CarrierProfile
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/carriers/{id}/rates [put]
func (h *CarrierHandler) UpdateRates(c echo.Context) error {
	role, carrierID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if role == domain.RoleCarrier && carrierID != id {
		return domain.ErrForbidden
	}

	var req updateRatesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	if err := h.directory.UpdateRates(ctx, id, domain.RateSchedule{
		PerMile:      req.PerMile,
		PerCubicFoot: req.PerCubicFoot,
		PerPound:     req.PerPound,
	}); err != nil {
		return err
	}

	updated, err := h.directory.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
