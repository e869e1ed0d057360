package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

type assetStore interface {
	Create(ctx context.Context, uid string, a *models.Asset) error
	Get(ctx context.Context, uid, assetID string) (*models.Asset, error)
	List(ctx context.Context, uid string) ([]models.Asset, error)
	Update(ctx context.Context, uid string, a *models.Asset) error
	Delete(ctx context.Context, uid, assetID string) error
}

type assetService struct {
	store assetStore
}

func NewAssetService(store assetStore) *assetService {
	return &assetService{store: store}
}

func (s *assetService) CreateAsset(ctx context.Context, uid string, req dto.CreateAssetRequest) (*models.Asset, error) {
	if err := validateAsset(req); err != nil {
		return nil, err
	}
	a := &models.Asset{
		AssetID: uuid.New().String(),
		Name:    req.Name,
		Symbol:  req.Symbol,
		Value:   req.Value,
		Price:   req.Price,
	}
	if err := s.store.Create(ctx, uid, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assetService) ListAssets(ctx context.Context, uid string) ([]models.Asset, error) {
	return s.store.List(ctx, uid)
}

func (s *assetService) UpdateAsset(ctx context.Context, uid, assetID string, req dto.UpdateAssetRequest) (*models.Asset, error) {
	if err := validateAsset(req); err != nil {
		return nil, err
	}
	a, err := s.store.Get(ctx, uid, assetID)
	if err != nil {
		return nil, err
	}
	a.Name = req.Name
	a.Symbol = req.Symbol
	a.Value = req.Value
	a.Price = req.Price
	if err := s.store.Update(ctx, uid, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, uid, assetID string) error {
	return s.store.Delete(ctx, uid, assetID)
}

func validateAsset(req dto.CreateAssetRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.Value < 0 {
		return errs.NewValidationError("value must not be negative")
	}
	if req.Price < 0 {
		return errs.NewValidationError("price must not be negative")
	}
	return nil
}
