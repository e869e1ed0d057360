package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

type assetStore struct {
	client *firestore.Client
}

func NewAssetStore(client *firestore.Client) *assetStore {
	return &assetStore{client: client}
}

func (s *assetStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("assets")
}

func (s *assetStore) Create(ctx context.Context, uid string, a *models.Asset) error {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	_, err := s.collection(uid).Doc(a.AssetID).Set(ctx, a)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create asset", err)
	}
	return nil
}

func (s *assetStore) Get(ctx context.Context, uid, assetID string) (*models.Asset, error) {
	doc, err := s.collection(uid).Doc(assetID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("asset not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get asset", err)
	}
	var a models.Asset
	if err := doc.DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse asset data", err)
	}
	return &a, nil
}

func (s *assetStore) List(ctx context.Context, uid string) ([]models.Asset, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list assets", err)
	}
	assets := make([]models.Asset, 0, len(docs))
	for _, doc := range docs {
		var a models.Asset
		if err := doc.DataTo(&a); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse asset data", err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (s *assetStore) Update(ctx context.Context, uid string, a *models.Asset) error {
	a.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(a.AssetID).Set(ctx, a)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update asset", err)
	}
	return nil
}

func (s *assetStore) Delete(ctx context.Context, uid, assetID string) error {
	_, err := s.collection(uid).Doc(assetID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete asset", err)
	}
	return nil
}
