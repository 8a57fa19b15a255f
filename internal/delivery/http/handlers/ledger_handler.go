package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/request"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/response"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
	ledgerdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/ledger"
)

type LedgerHandler struct {
	ledgerUsecase usecase.LedgerUsecase
}

func NewLedgerHandler(ledgerUsecase usecase.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{
		ledgerUsecase: ledgerUsecase,
	}
}

func (h *LedgerHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := domain.EarningsFilter{
		AdminID: r.URL.Query().Get("admin_id"),
		Status:  domain.EarningsStatus(r.URL.Query().Get("status")),
	}
	records, err := h.ledgerUsecase.ListRecords(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]response.EarningsRecordResponse, len(records))
	for i, record := range records {
		out[i] = response.EarningsRecordResponse{
			ID:            record.ID,
			AdminID:       record.AdminID,
			Amount:        record.Amount,
			Source:        string(record.Source),
			Status:        string(record.Status),
			SettlementRef: record.SettlementRef,
			Description:   record.Description,
			CreatedAt:     record.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LedgerHandler) RecordEarnings(w http.ResponseWriter, r *http.Request) {
	var req request.RecordEarningsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	record, err := h.ledgerUsecase.RecordEarnings(&ledgerdto.RecordEarningsInput{
		AdminID:       req.AdminID,
		Amount:        req.Amount,
		Source:        domain.EarningsSource(req.Source),
		SettlementRef: req.SettlementRef,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.EarningsRecordResponse{
		ID:            record.ID,
		AdminID:       record.AdminID,
		Amount:        record.Amount,
		Source:        string(record.Source),
		Status:        string(record.Status),
		SettlementRef: record.SettlementRef,
		Description:   record.Description,
		CreatedAt:     record.CreatedAt,
	})
}

func (h *LedgerHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req request.MarkPaidRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.ledgerUsecase.MarkPaid(chi.URLParam(r, "recordID"), req.SettlementRef); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LedgerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUsecase.CancelRecord(chi.URLParam(r, "recordID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LedgerHandler) AdminMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerUsecase.Metrics()
	if err != nil {
		writeError(w, err)
		return
	}
	performers := make([]response.TopPerformerResponse, len(result.TopPerformers))
	for i, performer := range result.TopPerformers {
		performers[i] = response.TopPerformerResponse{
			AdminID:        performer.AdminID,
			DisplayName:    performer.DisplayName,
			Role:           string(performer.Role),
			LifetimeEarned: performer.LifetimeEarned,
		}
	}
	writeJSON(w, http.StatusOK, response.AdminMetricsResponse{
		TotalRevenue:         result.TotalRevenue,
		AverageAdminFeeShare: result.AverageAdminFeeShare,
		TopPerformers:        performers,
		MonthlyDisbursed:     result.MonthlyDisbursed,
		PendingPayments:      result.PendingPayments,
	})
}
