package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/request"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/response"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/middleware"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/metrics"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
	admindto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/admin"
)

type AdminHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	metrics          *metrics.RevenueMetrics
}

func NewAdminHandler(directoryUsecase usecase.DirectoryUsecase, revenueMetrics *metrics.RevenueMetrics) *AdminHandler {
	return &AdminHandler{
		directoryUsecase: directoryUsecase,
		metrics:          revenueMetrics,
	}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.directoryUsecase.ListAdmins()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]response.AdminResponse, len(admins))
	for i, admin := range admins {
		out[i] = toAdminResponse(admin)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	admin, err := h.directoryUsecase.GetAdmin(chi.URLParam(r, "adminID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdminResponse(admin))
}

func (h *AdminHandler) Invite(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req request.InviteAdminRequest
	if !decodeBody(w, r, &req) {
		return
	}

	admin, err := h.directoryUsecase.InviteAdmin(&admindto.InviteAdminInput{
		ActorID:         actorID,
		WalletAddress:   req.WalletAddress,
		DisplayName:     req.DisplayName,
		Role:            domain.Role(req.Role),
		FeeSharePercent: req.FeeSharePercent,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.AdminsInvitedTotal.WithLabelValues(string(admin.Role)).Inc()
	}
	writeJSON(w, http.StatusCreated, toAdminResponse(admin))
}

func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req request.ChangeRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.directoryUsecase.ChangeRole(&admindto.ChangeRoleInput{
		ActorID:  actorID,
		TargetID: chi.URLParam(r, "adminID"),
		NewRole:  domain.Role(req.Role),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req request.ChangeStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.directoryUsecase.ChangeStatus(&admindto.ChangeStatusInput{
		ActorID:   actorID,
		TargetID:  chi.URLParam(r, "adminID"),
		NewStatus: domain.AdminStatus(req.Status),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) SetFeeShare(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	var req request.SetFeeShareRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := h.directoryUsecase.SetFeeShare(&admindto.SetFeeShareInput{
		ActorID:         actorID,
		TargetID:        chi.URLParam(r, "adminID"),
		FeeSharePercent: req.FeeSharePercent,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAdminResponse(admin *domain.AdministratorRecord) response.AdminResponse {
	permissions := make([]string, 0, len(admin.Permissions))
	for _, cap := range admin.Permissions.List() {
		permissions = append(permissions, string(cap))
	}
	return response.AdminResponse{
		ID:              admin.ID,
		WalletAddress:   admin.WalletAddress,
		DisplayName:     admin.DisplayName,
		Role:            string(admin.Role),
		Status:          string(admin.Status),
		FeeSharePercent: admin.FeeSharePercent,
		LifetimeEarned:  admin.LifetimeEarned,
		ReferralCode:    admin.ReferralCode,
		InvitedBy:       admin.InvitedBy,
		Permissions:     permissions,
		JoinedAt:        admin.JoinedAt,
	}
}
