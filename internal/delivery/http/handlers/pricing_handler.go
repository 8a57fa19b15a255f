package handlers

import (
	"net/http"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/request"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/response"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/metrics"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
	pricingdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/pricing"
)

type PricingHandler struct {
	pricingUsecase usecase.PricingUsecase
	metrics        *metrics.RevenueMetrics
}

func NewPricingHandler(pricingUsecase usecase.PricingUsecase, revenueMetrics *metrics.RevenueMetrics) *PricingHandler {
	return &PricingHandler{
		pricingUsecase: pricingUsecase,
		metrics:        revenueMetrics,
	}
}

func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	quote, err := h.pricingUsecase.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:                req.TierID,
		TokenType:             req.TokenType,
		Services:              req.Services,
		ReferralCode:          req.ReferralCode,
		CallerHistoricalCount: req.CallerHistoricalCount,
	})
	if err != nil {
		if h.metrics != nil {
			h.metrics.QuoteErrorsTotal.WithLabelValues("rejected").Inc()
		}
		writeError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.QuotesComputedTotal.WithLabelValues(req.TierID, req.TokenType).Inc()
	}

	writeJSON(w, http.StatusOK, response.QuoteResponse{
		Fee:              quote.Fee,
		Currency:         quote.Currency,
		BaseFee:          quote.BaseFee,
		Multiplier:       quote.Multiplier,
		ServicesTotal:    quote.ServicesTotal,
		LoyaltyFraction:  quote.LoyaltyFraction,
		ReferralFraction: quote.ReferralFraction,
	})
}

func (h *PricingHandler) BulkDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDiscountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, response.DiscountedFeeResponse{
		Fee: h.pricingUsecase.ApplyBulkDiscount(req.Units, req.Fee),
	})
}

func (h *PricingHandler) VolumeDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.VolumeDiscountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, response.DiscountedFeeResponse{
		Fee: h.pricingUsecase.ApplyVolumeDiscount(req.Value, req.Fee),
	})
}
