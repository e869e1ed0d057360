package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/middleware"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/internal/response"
)

type debtService interface {
	CreateDebt(ctx context.Context, uid string, req dto.CreateDebtRequest) (*models.Debt, error)
	ListDebts(ctx context.Context, uid string) ([]models.Debt, error)
	UpdateDebt(ctx context.Context, uid, debtID string, req dto.UpdateDebtRequest) (*models.Debt, error)
	DeleteDebt(ctx context.Context, uid, debtID string) error
	AddHistoryPoint(ctx context.Context, uid, debtID string, req dto.CreateDebtHistoryPointRequest) (*models.DebtHistoryPoint, error)
	ListHistory(ctx context.Context, uid, debtID string) ([]models.DebtHistoryPoint, error)
	UpdateHistoryPoint(ctx context.Context, uid, debtID, pointID string, req dto.UpdateDebtHistoryPointRequest) (*models.DebtHistoryPoint, error)
	DeleteHistoryPoint(ctx context.Context, uid, debtID, pointID string) error
	GetTrend(ctx context.Context, uid, debtID string) (dto.DebtChangeRates, error)
}

type debtHandlers struct {
	ResponseHandler response.ResponseHandler
	DebtSvc         debtService
}

func NewDebtHandlers(deps *Deps) *debtHandlers {
	return &debtHandlers{
		ResponseHandler: deps.ResponseHandler,
		DebtSvc:         deps.DebtSvc,
	}
}

func (h *debtHandlers) DebtRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListDebts)
	r.Post("/", h.CreateDebt)
	r.Put("/{debtId}", h.UpdateDebt)
	r.Delete("/{debtId}", h.DeleteDebt)
	r.Get("/{debtId}/history", h.ListHistory)
	r.Post("/{debtId}/history", h.AddHistoryPoint)
	r.Put("/{debtId}/history/{pointId}", h.UpdateHistoryPoint)
	r.Delete("/{debtId}/history/{pointId}", h.DeleteHistoryPoint)
	r.Get("/{debtId}/trend", h.GetTrend)
	return r
}

func (h *debtHandlers) ListDebts(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	debts, err := h.DebtSvc.ListDebts(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, debts)
}

func (h *debtHandlers) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	d, err := h.DebtSvc.CreateDebt(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, d)
}

func (h *debtHandlers) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	var req dto.UpdateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	d, err := h.DebtSvc.UpdateDebt(r.Context(), uid, debtID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, d)
}

func (h *debtHandlers) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	uid := middleware.UID(r.Context())
	if err := h.DebtSvc.DeleteDebt(r.Context(), uid, debtID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// --- History ---

func (h *debtHandlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	uid := middleware.UID(r.Context())
	history, err := h.DebtSvc.ListHistory(r.Context(), uid, debtID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, history)
}

func (h *debtHandlers) AddHistoryPoint(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	var req dto.CreateDebtHistoryPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	p, err := h.DebtSvc.AddHistoryPoint(r.Context(), uid, debtID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, p)
}

func (h *debtHandlers) UpdateHistoryPoint(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	pointID := chi.URLParam(r, "pointId")
	var req dto.UpdateDebtHistoryPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	p, err := h.DebtSvc.UpdateHistoryPoint(r.Context(), uid, debtID, pointID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, p)
}

func (h *debtHandlers) DeleteHistoryPoint(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	pointID := chi.URLParam(r, "pointId")
	uid := middleware.UID(r.Context())
	if err := h.DebtSvc.DeleteHistoryPoint(r.Context(), uid, debtID, pointID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *debtHandlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	uid := middleware.UID(r.Context())
	trend, err := h.DebtSvc.GetTrend(r.Context(), uid, debtID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, trend)
}
