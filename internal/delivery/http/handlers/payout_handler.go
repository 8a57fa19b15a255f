package handlers

import (
	"net/http"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/request"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/response"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/metrics"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
)

type PayoutHandler struct {
	distributionUsecase usecase.DistributionUsecase
	payoutUsecase       usecase.PayoutUsecase
	metrics             *metrics.RevenueMetrics
}

func NewPayoutHandler(
	distributionUsecase usecase.DistributionUsecase,
	payoutUsecase usecase.PayoutUsecase,
	revenueMetrics *metrics.RevenueMetrics) *PayoutHandler {

	return &PayoutHandler{
		distributionUsecase: distributionUsecase,
		payoutUsecase:       payoutUsecase,
		metrics:             revenueMetrics,
	}
}

func (h *PayoutHandler) SplitFee(w http.ResponseWriter, r *http.Request) {
	var req request.SplitFeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var dist domain.FeeDistribution
	var err error
	policy := req.Policy
	if policy == "" {
		dist, err = h.distributionUsecase.SplitFee(req.Fee)
		policy = "default"
	} else {
		dist, err = h.distributionUsecase.SplitFeeWithPolicy(policy, req.Fee)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.FeesSplitTotal.WithLabelValues(policy).Inc()
	}

	writeJSON(w, http.StatusOK, response.DistributionResponse{
		PlatformFee:  dist.PlatformFee,
		LeadAdminFee: dist.LeadAdminFee,
		AdminPoolFee: dist.AdminPoolFee,
		ReferralFee:  dist.ReferralFee,
		ReserveFund:  dist.ReserveFund,
	})
}

func (h *PayoutHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req request.AllocateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.payoutUsecase.Allocate(req.EventID, domain.FeeDistribution{
		PlatformFee:  req.PlatformFee,
		LeadAdminFee: req.LeadAdminFee,
		AdminPoolFee: req.AdminPoolFee,
		ReferralFee:  req.ReferralFee,
		ReserveFund:  req.ReserveFund,
	})
	if err != nil {
		if h.metrics != nil {
			h.metrics.AllocationErrorsTotal.WithLabelValues("rejected").Inc()
		}
		writeError(w, err)
		return
	}
	if result.Duplicate && h.metrics != nil {
		h.metrics.DuplicateEventsTotal.WithLabelValues().Inc()
	}

	writeJSON(w, http.StatusOK, response.AllocateResponse{
		EventID:   result.EventID,
		Payouts:   result.Payouts,
		Total:     result.Total,
		Duplicate: result.Duplicate,
		CreatedAt: result.CreatedAt,
	})
}
