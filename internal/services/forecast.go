package services

import (
	"context"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/finance"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/helpers"
)

type forecastMetricStore interface {
	Latest(ctx context.Context, uid string) (*models.DailyMetric, error)
}

type forecastRecurringStore interface {
	List(ctx context.Context, uid string) ([]models.RecurringTransaction, error)
}

type forecastOneTimeStore interface {
	List(ctx context.Context, uid string) ([]models.OneTimeTransaction, error)
}

type forecastService struct {
	metrics   forecastMetricStore
	recurring forecastRecurringStore
	oneTime   forecastOneTimeStore
}

func NewForecastService(metrics forecastMetricStore, recurring forecastRecurringStore, oneTime forecastOneTimeStore) *forecastService {
	return &forecastService{metrics: metrics, recurring: recurring, oneTime: oneTime}
}

// GetForecast projects net worth twelve months past the latest snapshot.
// Slider adjustments add to the stored monthly totals; simulation targets
// switch the projector into blended market-adjustment mode. With no snapshot
// to project from, the result is an empty-but-valid payload, never an error.
func (s *forecastService) GetForecast(ctx context.Context, uid string, args dto.ForecastArgs) (dto.ForecastResult, error) {
	last, err := s.metrics.Latest(ctx, uid)
	if err != nil {
		return dto.ForecastResult{}, err
	}
	if last == nil {
		return dto.ForecastResult{HasData: false}, nil
	}

	recurring, err := s.recurring.List(ctx, uid)
	if err != nil {
		return dto.ForecastResult{}, err
	}
	oneTime, err := s.oneTime.List(ctx, uid)
	if err != nil {
		return dto.ForecastResult{}, err
	}
	income, cost := finance.MonthlyTotals(recurring, oneTime)

	flow := finance.CashFlow{
		SliderIncome:    args.Income,
		SliderCost:      args.Cost,
		RecurringIncome: income,
		RecurringCost:   cost,
	}

	opts := finance.ProjectOptions{}
	if args.CurrentNetWorth != nil || args.CurrentAssets != nil || args.CurrentDebts != nil {
		opts.Current = &finance.Snapshot{
			NetWorth: helpers.ValueOr(args.CurrentNetWorth, last.NetWorth),
			Assets:   helpers.ValueOr(args.CurrentAssets, last.Assets),
			Debts:    helpers.ValueOr(args.CurrentDebts, last.Debts),
		}
	}
	if args.HasSimulation() {
		start := finance.Snapshot{NetWorth: last.NetWorth, Assets: last.Assets, Debts: last.Debts}
		if opts.Current != nil {
			start = *opts.Current
		}
		// An omitted target holds that line at its starting value.
		opts.Simulation = &finance.SimulationTarget{
			NetWorth: helpers.ValueOr(args.SimNetWorth, start.NetWorth),
			Assets:   helpers.ValueOr(args.SimAssets, start.Assets),
			Debts:    helpers.ValueOr(args.SimDebts, start.Debts),
		}
	}

	return dto.ForecastResult{
		HasData:    true,
		Baseline:   last,
		Projection: finance.Project(last, flow, opts),
	}, nil
}
