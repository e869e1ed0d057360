package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/logger"
)

type metricStore interface {
	Create(ctx context.Context, uid string, m *models.DailyMetric) error
	List(ctx context.Context, uid string) ([]models.DailyMetric, error)
	Latest(ctx context.Context, uid string) (*models.DailyMetric, error)
}

type metricAssetStore interface {
	List(ctx context.Context, uid string) ([]models.Asset, error)
}

type metricDebtStore interface {
	List(ctx context.Context, uid string) ([]models.Debt, error)
}

type metricService struct {
	metrics metricStore
	assets  metricAssetStore
	debts   metricDebtStore
}

func NewMetricService(metrics metricStore, assets metricAssetStore, debts metricDebtStore) *metricService {
	return &metricService{metrics: metrics, assets: assets, debts: debts}
}

func (s *metricService) ListMetrics(ctx context.Context, uid string) ([]models.DailyMetric, error) {
	return s.metrics.List(ctx, uid)
}

// Snapshot sums the user's assets and debts at the given time and persists
// the resulting net-worth point. Only real points are ever written; the
// forecast projector's synthetic points never pass through here.
func (s *metricService) Snapshot(ctx context.Context, uid string, now time.Time) (*models.DailyMetric, error) {
	log := logger.FromContext(ctx)

	assets, err := s.assets.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	debts, err := s.debts.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	var assetTotal float64
	prices := map[string]float64{}
	for _, a := range assets {
		assetTotal += a.Value
		if a.Symbol != "" && a.Price > 0 {
			prices[a.Symbol] = a.Price
		}
	}
	var debtTotal float64
	for _, d := range debts {
		debtTotal += d.Value
	}

	m := &models.DailyMetric{
		MetricID: uuid.New().String(),
		Date:     now,
		NetWorth: assetTotal - debtTotal,
		Assets:   assetTotal,
		Debts:    debtTotal,
	}
	if len(prices) > 0 {
		m.Prices = prices
	}
	if err := s.metrics.Create(ctx, uid, m); err != nil {
		return nil, err
	}

	log.Info("snapshot recorded", "net_worth", m.NetWorth, "assets", m.Assets, "debts", m.Debts)
	return m, nil
}
