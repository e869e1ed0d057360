package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/finance"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

// recurringTransactionStore is the Firestore storage interface for
// recurring transactions.
type recurringTransactionStore interface {
	Create(ctx context.Context, uid string, t *models.RecurringTransaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.RecurringTransaction, error)
	List(ctx context.Context, uid string) ([]models.RecurringTransaction, error)
	Update(ctx context.Context, uid string, t *models.RecurringTransaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type oneTimeTransactionStore interface {
	Create(ctx context.Context, uid string, t *models.OneTimeTransaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.OneTimeTransaction, error)
	List(ctx context.Context, uid string) ([]models.OneTimeTransaction, error)
	Update(ctx context.Context, uid string, t *models.OneTimeTransaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionService struct {
	recurring recurringTransactionStore
	oneTime   oneTimeTransactionStore
}

func NewTransactionService(recurring recurringTransactionStore, oneTime oneTimeTransactionStore) *transactionService {
	return &transactionService{recurring: recurring, oneTime: oneTime}
}

// --- Recurring transactions ---

func (s *transactionService) CreateRecurring(ctx context.Context, uid string, req dto.CreateRecurringTransactionRequest) (*models.RecurringTransaction, error) {
	if err := validateRecurring(req); err != nil {
		return nil, err
	}
	t := recurringFromRequest(req)
	t.TransactionID = uuid.New().String()
	if err := s.recurring.Create(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) ListRecurring(ctx context.Context, uid string) ([]models.RecurringTransaction, error) {
	return s.recurring.List(ctx, uid)
}

func (s *transactionService) UpdateRecurring(ctx context.Context, uid, transactionID string, req dto.UpdateRecurringTransactionRequest) (*models.RecurringTransaction, error) {
	if err := validateRecurring(req); err != nil {
		return nil, err
	}
	existing, err := s.recurring.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}
	t := recurringFromRequest(req)
	t.TransactionID = existing.TransactionID
	t.CreatedAt = existing.CreatedAt
	if err := s.recurring.Update(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) DeleteRecurring(ctx context.Context, uid, transactionID string) error {
	return s.recurring.Delete(ctx, uid, transactionID)
}

// --- One-time transactions ---

func (s *transactionService) CreateOneTime(ctx context.Context, uid string, req dto.CreateOneTimeTransactionRequest) (*models.OneTimeTransaction, error) {
	if err := validateOneTime(req); err != nil {
		return nil, err
	}
	t := oneTimeFromRequest(req)
	t.TransactionID = uuid.New().String()
	if err := s.oneTime.Create(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) ListOneTime(ctx context.Context, uid string) ([]models.OneTimeTransaction, error) {
	return s.oneTime.List(ctx, uid)
}

func (s *transactionService) UpdateOneTime(ctx context.Context, uid, transactionID string, req dto.UpdateOneTimeTransactionRequest) (*models.OneTimeTransaction, error) {
	if err := validateOneTime(req); err != nil {
		return nil, err
	}
	existing, err := s.oneTime.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}
	t := oneTimeFromRequest(req)
	t.TransactionID = existing.TransactionID
	t.CreatedAt = existing.CreatedAt
	if err := s.oneTime.Update(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) SetOneTimeHidden(ctx context.Context, uid, transactionID string, hidden bool) (*models.OneTimeTransaction, error) {
	t, err := s.oneTime.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}
	t.Hidden = hidden
	if err := s.oneTime.Update(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transactionService) DeleteOneTime(ctx context.Context, uid, transactionID string) error {
	return s.oneTime.Delete(ctx, uid, transactionID)
}

// --- Aggregations ---

func (s *transactionService) GetMonthlySummary(ctx context.Context, uid string) (dto.MonthlySummaryResult, error) {
	recurring, oneTime, err := s.listBoth(ctx, uid)
	if err != nil {
		return dto.MonthlySummaryResult{}, err
	}
	income, cost := finance.MonthlyTotals(recurring, oneTime)
	return dto.MonthlySummaryResult{MonthlyIncome: income, MonthlyCost: cost}, nil
}

func (s *transactionService) GetCostBreakdown(ctx context.Context, uid string) (dto.CostBreakdownResult, error) {
	recurring, oneTime, err := s.listBoth(ctx, uid)
	if err != nil {
		return dto.CostBreakdownResult{}, err
	}
	return dto.CostBreakdownResult{Items: finance.MonthlyCostBreakdown(recurring, oneTime)}, nil
}

func (s *transactionService) GetCostBreakdownByTags(ctx context.Context, uid string, priorityTags []string) (dto.CostBreakdownResult, error) {
	recurring, oneTime, err := s.listBoth(ctx, uid)
	if err != nil {
		return dto.CostBreakdownResult{}, err
	}
	return dto.CostBreakdownResult{Items: finance.MonthlyCostBreakdownByTags(recurring, oneTime, priorityTags)}, nil
}

func (s *transactionService) GetTaggedCostBreakdown(ctx context.Context, uid string) (dto.CostBreakdownResult, error) {
	recurring, oneTime, err := s.listBoth(ctx, uid)
	if err != nil {
		return dto.CostBreakdownResult{}, err
	}
	return dto.CostBreakdownResult{Items: finance.TaggedCostBreakdown(recurring, oneTime)}, nil
}

func (s *transactionService) listBoth(ctx context.Context, uid string) ([]models.RecurringTransaction, []models.OneTimeTransaction, error) {
	recurring, err := s.recurring.List(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	oneTime, err := s.oneTime.List(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return recurring, oneTime, nil
}

// --- Validation ---

func validateRecurring(req dto.CreateRecurringTransactionRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.Amount < 0 {
		return errs.NewValidationError("amount must not be negative")
	}
	if err := validateTransactionType(req.Type); err != nil {
		return err
	}
	return validateSchedule(req)
}

func validateOneTime(req dto.CreateOneTimeTransactionRequest) error {
	if req.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if req.Amount < 0 {
		return errs.NewValidationError("amount must not be negative")
	}
	if req.Date == 0 {
		return errs.NewValidationError("date is required")
	}
	return validateTransactionType(req.Type)
}

func validateTransactionType(t string) error {
	switch t {
	case dto.TypeIncome, dto.TypeExpense:
		return nil
	}
	return errs.NewValidationError(`type must be "income" or "expense"`)
}

// validateSchedule enforces that only the schedule shape matching the
// frequency is populated. A monthly transaction with no daysOfMonth is legal
// and counts as one occurrence.
func validateSchedule(req dto.CreateRecurringTransactionRequest) error {
	switch req.Frequency {
	case dto.FrequencyMonthly:
		if len(req.DaysOfWeek) > 0 || req.Month != 0 || req.Day != 0 {
			return errs.NewValidationError("monthly transactions only accept daysOfMonth")
		}
		for _, d := range req.DaysOfMonth {
			if d < 1 || d > 31 {
				return errs.NewValidationError(fmt.Sprintf("daysOfMonth entry %d out of range 1-31", d))
			}
		}
	case dto.FrequencyWeekly:
		if len(req.DaysOfMonth) > 0 || req.Month != 0 || req.Day != 0 {
			return errs.NewValidationError("weekly transactions only accept daysOfWeek")
		}
		for _, d := range req.DaysOfWeek {
			if d < 0 || d > 6 {
				return errs.NewValidationError(fmt.Sprintf("daysOfWeek entry %d out of range 0-6", d))
			}
		}
	case dto.FrequencyQuarterly, dto.FrequencyYearly:
		if len(req.DaysOfMonth) > 0 || len(req.DaysOfWeek) > 0 {
			return errs.NewValidationError(req.Frequency + " transactions only accept month and day")
		}
		if req.Month < 1 || req.Month > 12 {
			return errs.NewValidationError("month must be between 1 and 12")
		}
		if req.Day < 1 || req.Day > 31 {
			return errs.NewValidationError("day must be between 1 and 31")
		}
	default:
		return errs.NewValidationError("frequency must be one of: monthly, weekly, quarterly, yearly")
	}
	return nil
}

// --- Mapping ---

func recurringFromRequest(req dto.CreateRecurringTransactionRequest) *models.RecurringTransaction {
	return &models.RecurringTransaction{
		Name:        req.Name,
		Amount:      req.Amount,
		Type:        req.Type,
		Frequency:   req.Frequency,
		DaysOfMonth: req.DaysOfMonth,
		DaysOfWeek:  req.DaysOfWeek,
		Month:       req.Month,
		Day:         req.Day,
		Tags:        req.Tags,
	}
}

func oneTimeFromRequest(req dto.CreateOneTimeTransactionRequest) *models.OneTimeTransaction {
	return &models.OneTimeTransaction{
		Name:   req.Name,
		Amount: req.Amount,
		Type:   req.Type,
		Date:   time.UnixMilli(req.Date).UTC(),
		Tags:   req.Tags,
		Hidden: req.Hidden,
	}
}
