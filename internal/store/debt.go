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

type debtStore struct {
	client *firestore.Client
}

func NewDebtStore(client *firestore.Client) *debtStore {
	return &debtStore{client: client}
}

func (s *debtStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("debts")
}

func (s *debtStore) historyCollection(uid, debtID string) *firestore.CollectionRef {
	return s.collection(uid).Doc(debtID).Collection("history")
}

func (s *debtStore) Create(ctx context.Context, uid string, d *models.Debt) error {
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	_, err := s.collection(uid).Doc(d.DebtID).Set(ctx, d)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create debt", err)
	}
	return nil
}

func (s *debtStore) Get(ctx context.Context, uid, debtID string) (*models.Debt, error) {
	doc, err := s.collection(uid).Doc(debtID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("debt not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get debt", err)
	}
	var d models.Debt
	if err := doc.DataTo(&d); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse debt data", err)
	}
	return &d, nil
}

func (s *debtStore) List(ctx context.Context, uid string) ([]models.Debt, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list debts", err)
	}
	debts := make([]models.Debt, 0, len(docs))
	for _, doc := range docs {
		var d models.Debt
		if err := doc.DataTo(&d); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse debt data", err)
		}
		debts = append(debts, d)
	}
	return debts, nil
}

func (s *debtStore) Update(ctx context.Context, uid string, d *models.Debt) error {
	d.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(d.DebtID).Set(ctx, d)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update debt", err)
	}
	return nil
}

// Delete removes a debt and all of its history points in one bulk write.
func (s *debtStore) Delete(ctx context.Context, uid, debtID string) error {
	docs, err := s.historyCollection(uid, debtID).Documents(ctx).GetAll()
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to read debt history for delete", err)
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs)+1)
	for _, doc := range docs {
		job, err := bw.Delete(doc.Ref)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("delete", "failed to delete debt history point", err)
		}
		jobs = append(jobs, job)
	}
	job, err := bw.Delete(s.collection(uid).Doc(debtID))
	if err != nil {
		bw.End()
		return errs.NewDatabaseError("delete", "failed to delete debt", err)
	}
	jobs = append(jobs, job)

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("delete", "failed to delete debt", err)
		}
	}
	return nil
}

// --- History points ---

func (s *debtStore) CreateHistoryPoint(ctx context.Context, uid, debtID string, p *models.DebtHistoryPoint) error {
	_, err := s.historyCollection(uid, debtID).Doc(p.PointID).Set(ctx, p)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create debt history point", err)
	}
	return nil
}

func (s *debtStore) ListHistory(ctx context.Context, uid, debtID string) ([]models.DebtHistoryPoint, error) {
	docs, err := s.historyCollection(uid, debtID).OrderBy("timestamp", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list debt history", err)
	}
	points := make([]models.DebtHistoryPoint, 0, len(docs))
	for _, doc := range docs {
		var p models.DebtHistoryPoint
		if err := doc.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse debt history data", err)
		}
		points = append(points, p)
	}
	return points, nil
}

func (s *debtStore) UpdateHistoryPoint(ctx context.Context, uid, debtID string, p *models.DebtHistoryPoint) error {
	_, err := s.historyCollection(uid, debtID).Doc(p.PointID).Set(ctx, p)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update debt history point", err)
	}
	return nil
}

func (s *debtStore) DeleteHistoryPoint(ctx context.Context, uid, debtID, pointID string) error {
	_, err := s.historyCollection(uid, debtID).Doc(pointID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete debt history point", err)
	}
	return nil
}
