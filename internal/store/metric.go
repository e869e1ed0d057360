package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

type metricStore struct {
	client *firestore.Client
}

func NewMetricStore(client *firestore.Client) *metricStore {
	return &metricStore{client: client}
}

func (s *metricStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("daily_metrics")
}

func (s *metricStore) Create(ctx context.Context, uid string, m *models.DailyMetric) error {
	_, err := s.collection(uid).Doc(m.MetricID).Set(ctx, m)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create daily metric", err)
	}
	return nil
}

func (s *metricStore) List(ctx context.Context, uid string) ([]models.DailyMetric, error) {
	docs, err := s.collection(uid).OrderBy("date", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list daily metrics", err)
	}
	metrics := make([]models.DailyMetric, 0, len(docs))
	for _, doc := range docs {
		var m models.DailyMetric
		if err := doc.DataTo(&m); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse daily metric data", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// Latest returns the most recent metric, or nil when the user has no
// snapshots yet.
func (s *metricStore) Latest(ctx context.Context, uid string) (*models.DailyMetric, error) {
	iter := s.collection(uid).OrderBy("date", firestore.Desc).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get latest daily metric", err)
	}
	var m models.DailyMetric
	if err := doc.DataTo(&m); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse daily metric data", err)
	}
	return &m, nil
}
