package services

import (
	"context"
	"errors"
	"testing"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

type fakeAssetStore struct {
	items   []models.Asset
	err     error
	created *models.Asset
	updated *models.Asset
	deleted string
}

func (f *fakeAssetStore) Create(_ context.Context, _ string, a *models.Asset) error {
	f.created = a
	return f.err
}

func (f *fakeAssetStore) Get(_ context.Context, _, assetID string) (*models.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].AssetID == assetID {
			return &f.items[i], nil
		}
	}
	return nil, errs.NewNotFoundError("asset not found")
}

func (f *fakeAssetStore) List(_ context.Context, _ string) ([]models.Asset, error) {
	return f.items, f.err
}

func (f *fakeAssetStore) Update(_ context.Context, _ string, a *models.Asset) error {
	f.updated = a
	return f.err
}

func (f *fakeAssetStore) Delete(_ context.Context, _, assetID string) error {
	f.deleted = assetID
	return f.err
}

func TestCreateAsset_AssignsID(t *testing.T) {
	store := &fakeAssetStore{}
	svc := NewAssetService(store)

	got, err := svc.CreateAsset(context.Background(), "uid1", dto.CreateAssetRequest{
		Name:   "Ether",
		Symbol: "ETH",
		Value:  500,
		Price:  2000,
	})
	if err != nil {
		t.Fatalf("CreateAsset error: %v", err)
	}
	if got.AssetID == "" {
		t.Fatal("expected a generated asset ID")
	}
	if store.created != got {
		t.Fatal("expected the created asset to be persisted")
	}
}

func TestCreateAsset_RejectsNegativePrice(t *testing.T) {
	svc := NewAssetService(&fakeAssetStore{})

	_, err := svc.CreateAsset(context.Background(), "uid1", dto.CreateAssetRequest{
		Name:  "Ether",
		Value: 500,
		Price: -1,
	})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateAsset_NotFound(t *testing.T) {
	svc := NewAssetService(&fakeAssetStore{})

	_, err := svc.UpdateAsset(context.Background(), "uid1", "missing", dto.UpdateAssetRequest{
		Name:  "Ether",
		Value: 500,
	})
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteAsset(t *testing.T) {
	store := &fakeAssetStore{}
	svc := NewAssetService(store)

	if err := svc.DeleteAsset(context.Background(), "uid1", "a1"); err != nil {
		t.Fatalf("DeleteAsset error: %v", err)
	}
	if store.deleted != "a1" {
		t.Fatalf("expected delete for a1, got %q", store.deleted)
	}
}
