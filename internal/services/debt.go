package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/finance"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

type debtStore interface {
	Create(ctx context.Context, uid string, d *models.Debt) error
	Get(ctx context.Context, uid, debtID string) (*models.Debt, error)
	List(ctx context.Context, uid string) ([]models.Debt, error)
	Update(ctx context.Context, uid string, d *models.Debt) error
	Delete(ctx context.Context, uid, debtID string) error
	CreateHistoryPoint(ctx context.Context, uid, debtID string, p *models.DebtHistoryPoint) error
	ListHistory(ctx context.Context, uid, debtID string) ([]models.DebtHistoryPoint, error)
	UpdateHistoryPoint(ctx context.Context, uid, debtID string, p *models.DebtHistoryPoint) error
	DeleteHistoryPoint(ctx context.Context, uid, debtID, pointID string) error
}

type debtService struct {
	store debtStore
}

func NewDebtService(store debtStore) *debtService {
	return &debtService{store: store}
}

func (s *debtService) CreateDebt(ctx context.Context, uid string, req dto.CreateDebtRequest) (*models.Debt, error) {
	if err := validateDebt(req); err != nil {
		return nil, err
	}
	d := &models.Debt{
		DebtID: uuid.New().String(),
		Name:   req.Name,
		Value:  req.Value,
	}
	if err := s.store.Create(ctx, uid, d); err != nil {
		return nil, err
	}
	// The opening value is the first history point.
	p := &models.DebtHistoryPoint{
		PointID:   uuid.New().String(),
		Timestamp: time.Now(),
		Value:     req.Value,
	}
	if err := s.store.CreateHistoryPoint(ctx, uid, d.DebtID, p); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *debtService) ListDebts(ctx context.Context, uid string) ([]models.Debt, error) {
	return s.store.List(ctx, uid)
}

func (s *debtService) UpdateDebt(ctx context.Context, uid, debtID string, req dto.UpdateDebtRequest) (*models.Debt, error) {
	if err := validateDebt(req); err != nil {
		return nil, err
	}
	d, err := s.store.Get(ctx, uid, debtID)
	if err != nil {
		return nil, err
	}
	valueChanged := d.Value != req.Value
	d.Name = req.Name
	d.Value = req.Value
	if err := s.store.Update(ctx, uid, d); err != nil {
		return nil, err
	}
	if valueChanged {
		p := &models.DebtHistoryPoint{
			PointID:   uuid.New().String(),
			Timestamp: time.Now(),
			Value:     req.Value,
		}
		if err := s.store.CreateHistoryPoint(ctx, uid, debtID, p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, uid, debtID string) error {
	return s.store.Delete(ctx, uid, debtID)
}

// --- History ---

func (s *debtService) AddHistoryPoint(ctx context.Context, uid, debtID string, req dto.CreateDebtHistoryPointRequest) (*models.DebtHistoryPoint, error) {
	if err := validateHistoryPoint(req); err != nil {
		return nil, err
	}
	if _, err := s.store.Get(ctx, uid, debtID); err != nil {
		return nil, err
	}
	p := &models.DebtHistoryPoint{
		PointID:   uuid.New().String(),
		Timestamp: time.UnixMilli(req.Timestamp).UTC(),
		Value:     req.Value,
	}
	if err := s.store.CreateHistoryPoint(ctx, uid, debtID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *debtService) ListHistory(ctx context.Context, uid, debtID string) ([]models.DebtHistoryPoint, error) {
	if _, err := s.store.Get(ctx, uid, debtID); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, uid, debtID)
}

func (s *debtService) UpdateHistoryPoint(ctx context.Context, uid, debtID, pointID string, req dto.UpdateDebtHistoryPointRequest) (*models.DebtHistoryPoint, error) {
	if err := validateHistoryPoint(req); err != nil {
		return nil, err
	}
	p := &models.DebtHistoryPoint{
		PointID:   pointID,
		Timestamp: time.UnixMilli(req.Timestamp).UTC(),
		Value:     req.Value,
	}
	if err := s.store.UpdateHistoryPoint(ctx, uid, debtID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *debtService) DeleteHistoryPoint(ctx context.Context, uid, debtID, pointID string) error {
	return s.store.DeleteHistoryPoint(ctx, uid, debtID, pointID)
}

// GetTrend computes the regression-based weekly and monthly change rates for
// one debt's history. Rates stay nil when the history is too thin.
func (s *debtService) GetTrend(ctx context.Context, uid, debtID string) (dto.DebtChangeRates, error) {
	history, err := s.ListHistory(ctx, uid, debtID)
	if err != nil {
		return dto.DebtChangeRates{}, err
	}
	return finance.ChangeRates(history), nil
}

// --- Validation ---

func validateDebt(req dto.CreateDebtRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.Value < 0 {
		return errs.NewValidationError("value must not be negative")
	}
	return nil
}

func validateHistoryPoint(req dto.CreateDebtHistoryPointRequest) error {
	if req.Timestamp == 0 {
		return errs.NewValidationError("timestamp is required")
	}
	if req.Value < 0 {
		return errs.NewValidationError("value must not be negative")
	}
	return nil
}
