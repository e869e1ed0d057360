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

type recurringTransactionStore struct {
	client *firestore.Client
}

func NewRecurringTransactionStore(client *firestore.Client) *recurringTransactionStore {
	return &recurringTransactionStore{client: client}
}

func (s *recurringTransactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("recurring_transactions")
}

func (s *recurringTransactionStore) Create(ctx context.Context, uid string, t *models.RecurringTransaction) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := s.collection(uid).Doc(t.TransactionID).Set(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create recurring transaction", err)
	}
	return nil
}

func (s *recurringTransactionStore) Get(ctx context.Context, uid, transactionID string) (*models.RecurringTransaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("recurring transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get recurring transaction", err)
	}
	var t models.RecurringTransaction
	if err := doc.DataTo(&t); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse recurring transaction data", err)
	}
	return &t, nil
}

func (s *recurringTransactionStore) List(ctx context.Context, uid string) ([]models.RecurringTransaction, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list recurring transactions", err)
	}
	txs := make([]models.RecurringTransaction, 0, len(docs))
	for _, d := range docs {
		var t models.RecurringTransaction
		if err := d.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse recurring transaction data", err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (s *recurringTransactionStore) Update(ctx context.Context, uid string, t *models.RecurringTransaction) error {
	t.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(t.TransactionID).Set(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update recurring transaction", err)
	}
	return nil
}

func (s *recurringTransactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete recurring transaction", err)
	}
	return nil
}

type oneTimeTransactionStore struct {
	client *firestore.Client
}

func NewOneTimeTransactionStore(client *firestore.Client) *oneTimeTransactionStore {
	return &oneTimeTransactionStore{client: client}
}

func (s *oneTimeTransactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("onetime_transactions")
}

func (s *oneTimeTransactionStore) Create(ctx context.Context, uid string, t *models.OneTimeTransaction) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := s.collection(uid).Doc(t.TransactionID).Set(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create one-time transaction", err)
	}
	return nil
}

func (s *oneTimeTransactionStore) Get(ctx context.Context, uid, transactionID string) (*models.OneTimeTransaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("one-time transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get one-time transaction", err)
	}
	var t models.OneTimeTransaction
	if err := doc.DataTo(&t); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse one-time transaction data", err)
	}
	return &t, nil
}

func (s *oneTimeTransactionStore) List(ctx context.Context, uid string) ([]models.OneTimeTransaction, error) {
	docs, err := s.collection(uid).OrderBy("date", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list one-time transactions", err)
	}
	txs := make([]models.OneTimeTransaction, 0, len(docs))
	for _, d := range docs {
		var t models.OneTimeTransaction
		if err := d.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse one-time transaction data", err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (s *oneTimeTransactionStore) Update(ctx context.Context, uid string, t *models.OneTimeTransaction) error {
	t.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(t.TransactionID).Set(ctx, t)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update one-time transaction", err)
	}
	return nil
}

func (s *oneTimeTransactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete one-time transaction", err)
	}
	return nil
}
