package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/optiifreight/quoting-engine/internal/api/metrics"
	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

// QuoteHandler handles HTTP requests for ranked freight quotes.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Rank handles POST /v1/quotes.
//
// @Summary      Rank carrier offers for a shipment
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quoteRequest  true  "Shipment physical description and route"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Rank(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	shipperID, _ := c.Get("username").(string)

	start := time.Now()
	result, err := h.service.RankOffers(c.Request().Context(), ports.QuoteRequestInput{
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		ShipperID: shipperID,
		Spec: domain.ShipmentSpec{
			OriginCode: req.OriginZip,
			DestCode:   req.DestZip,
			WeightLb:   req.WeightLb,
			LengthFt:   req.LengthFt,
			WidthFt:    req.WidthFt,
			HeightFt:   req.HeightFt,
		},
	})
	if err != nil {
		return err
	}
	metrics.QuoteDuration.Observe(time.Since(start).Seconds())
	metrics.CarriersRanked.Observe(float64(len(result.Offers)))
	if result.FromCache {
		metrics.QuoteCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.QuoteCacheTotal.WithLabelValues("miss").Inc()
	}
	metrics.QuotesComputedTotal.WithLabelValues(bestBasis(result.Offers)).Inc()

	offers := make([]offerResponse, len(result.Offers))
	for i, o := range result.Offers {
		offers[i] = offerResponse{
			CarrierID:          o.Carrier.ID,
			CarrierName:        o.Carrier.Name,
			Rating:             o.Carrier.Rating,
			Equipment:          o.Carrier.Equipment,
			TotalCharge:        o.Quote.TotalCharge,
			BaseCharge:         o.Quote.BaseCharge,
			MileageCharge:      o.Quote.MileageCharge,
			ChargeableBasis:    string(o.Quote.Basis),
			TransitTimeDisplay: o.Quote.TransitTimeDisplay,
			Breakdown:          o.Quote.Breakdown,
			Score:              o.Score,
		}
	}

	return c.JSON(http.StatusOK, quoteResponse{
		RequestID:     result.RequestID,
		DistanceMiles: result.DistanceMiles,
		FromCache:     result.FromCache,
		Offers:        offers,
	})
}

func bestBasis(offers []domain.RankedCarrierOffer) string {
	if len(offers) == 0 {
		return "none"
	}
	return string(offers[0].Quote.Basis)
}
