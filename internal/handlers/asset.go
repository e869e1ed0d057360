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

type assetService interface {
	CreateAsset(ctx context.Context, uid string, req dto.CreateAssetRequest) (*models.Asset, error)
	ListAssets(ctx context.Context, uid string) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, uid, assetID string, req dto.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, uid, assetID string) error
}

type assetHandlers struct {
	ResponseHandler response.ResponseHandler
	AssetSvc        assetService
}

func NewAssetHandlers(deps *Deps) *assetHandlers {
	return &assetHandlers{
		ResponseHandler: deps.ResponseHandler,
		AssetSvc:        deps.AssetSvc,
	}
}

func (h *assetHandlers) AssetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListAssets)
	r.Post("/", h.CreateAsset)
	r.Put("/{assetId}", h.UpdateAsset)
	r.Delete("/{assetId}", h.DeleteAsset)
	return r
}

func (h *assetHandlers) ListAssets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	assets, err := h.AssetSvc.ListAssets(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, assets)
}

func (h *assetHandlers) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	a, err := h.AssetSvc.CreateAsset(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, a)
}

func (h *assetHandlers) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	var req dto.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	a, err := h.AssetSvc.UpdateAsset(r.Context(), uid, assetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, a)
}

func (h *assetHandlers) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	uid := middleware.UID(r.Context())
	if err := h.AssetSvc.DeleteAsset(r.Context(), uid, assetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
