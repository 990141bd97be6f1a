package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// HistoryHandler serves a shipper's recent quote requests from the audit
// trail.
type HistoryHandler struct {
	audits ports.AuditRepository
}

func NewHistoryHandler(audits ports.AuditRepository) *HistoryHandler {
	return &HistoryHandler{audits: audits}
}

// List handles GET /v1/quotes/history.
//
// @Summary      List the caller's recent quote requests
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max records (default 20)"
// @Success      200    {array}   domain.QuoteAudit
// @Router       /v1/quotes/history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	shipperID, _ := c.Get("username").(string)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	audits, err := h.audits.ListByShipper(c.Request().Context(), shipperID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, audits)
}
