package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/middleware"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/internal/response"
)

type transactionService interface {
	CreateRecurring(ctx context.Context, uid string, req dto.CreateRecurringTransactionRequest) (*models.RecurringTransaction, error)
	ListRecurring(ctx context.Context, uid string) ([]models.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, uid, transactionID string, req dto.UpdateRecurringTransactionRequest) (*models.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, uid, transactionID string) error
	CreateOneTime(ctx context.Context, uid string, req dto.CreateOneTimeTransactionRequest) (*models.OneTimeTransaction, error)
	ListOneTime(ctx context.Context, uid string) ([]models.OneTimeTransaction, error)
	UpdateOneTime(ctx context.Context, uid, transactionID string, req dto.UpdateOneTimeTransactionRequest) (*models.OneTimeTransaction, error)
	SetOneTimeHidden(ctx context.Context, uid, transactionID string, hidden bool) (*models.OneTimeTransaction, error)
	DeleteOneTime(ctx context.Context, uid, transactionID string) error
	GetMonthlySummary(ctx context.Context, uid string) (dto.MonthlySummaryResult, error)
	GetCostBreakdown(ctx context.Context, uid string) (dto.CostBreakdownResult, error)
	GetCostBreakdownByTags(ctx context.Context, uid string, priorityTags []string) (dto.CostBreakdownResult, error)
	GetTaggedCostBreakdown(ctx context.Context, uid string) (dto.CostBreakdownResult, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/recurring", h.ListRecurring)
	r.Post("/recurring", h.CreateRecurring)
	r.Put("/recurring/{transactionId}", h.UpdateRecurring)
	r.Delete("/recurring/{transactionId}", h.DeleteRecurring)
	r.Get("/one-time", h.ListOneTime)
	r.Post("/one-time", h.CreateOneTime)
	r.Put("/one-time/{transactionId}/hidden", h.SetOneTimeHidden) // must be before /{transactionId}
	r.Put("/one-time/{transactionId}", h.UpdateOneTime)
	r.Delete("/one-time/{transactionId}", h.DeleteOneTime)
	r.Get("/summary", h.GetMonthlySummary)
	r.Get("/breakdown", h.GetCostBreakdown)
	r.Get("/breakdown/tags", h.GetCostBreakdownByTags)
	r.Get("/breakdown/tagged", h.GetTaggedCostBreakdown)
	return r
}

// --- Recurring ---

func (h *transactionHandlers) ListRecurring(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	txs, err := h.TransactionSvc.ListRecurring(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.CreateRecurring(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) UpdateRecurring(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.UpdateRecurringTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.UpdateRecurring(r.Context(), uid, transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.DeleteRecurring(r.Context(), uid, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// --- One-time ---

func (h *transactionHandlers) ListOneTime(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	txs, err := h.TransactionSvc.ListOneTime(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) CreateOneTime(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOneTimeTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.CreateOneTime(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) UpdateOneTime(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.UpdateOneTimeTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.UpdateOneTime(r.Context(), uid, transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) SetOneTimeHidden(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.SetHiddenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.SetOneTimeHidden(r.Context(), uid, transactionID, req.Hidden)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) DeleteOneTime(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.DeleteOneTime(r.Context(), uid, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// --- Aggregations ---

func (h *transactionHandlers) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.TransactionSvc.GetMonthlySummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *transactionHandlers) GetCostBreakdown(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	breakdown, err := h.TransactionSvc.GetCostBreakdown(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, breakdown)
}

// GetCostBreakdownByTags reads the priority tag order from the `priority`
// query parameter, comma-separated.
func (h *transactionHandlers) GetCostBreakdownByTags(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	var priority []string
	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority = strings.Split(raw, ",")
	}
	breakdown, err := h.TransactionSvc.GetCostBreakdownByTags(r.Context(), uid, priority)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, breakdown)
}

func (h *transactionHandlers) GetTaggedCostBreakdown(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	breakdown, err := h.TransactionSvc.GetTaggedCostBreakdown(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, breakdown)
}
