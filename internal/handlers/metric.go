package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/middleware"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/internal/response"
)

type metricService interface {
	ListMetrics(ctx context.Context, uid string) ([]models.DailyMetric, error)
	Snapshot(ctx context.Context, uid string, now time.Time) (*models.DailyMetric, error)
}

type forecastService interface {
	GetForecast(ctx context.Context, uid string, args dto.ForecastArgs) (dto.ForecastResult, error)
}

type metricHandlers struct {
	ResponseHandler response.ResponseHandler
	MetricSvc       metricService
	ForecastSvc     forecastService
}

func NewMetricHandlers(deps *Deps) *metricHandlers {
	return &metricHandlers{
		ResponseHandler: deps.ResponseHandler,
		MetricSvc:       deps.MetricSvc,
		ForecastSvc:     deps.ForecastSvc,
	}
}

func (h *metricHandlers) MetricRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListMetrics)
	r.Post("/snapshot", h.Snapshot)
	return r
}

func (h *metricHandlers) ForecastRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetForecast)
	return r
}

func (h *metricHandlers) ListMetrics(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	metrics, err := h.MetricSvc.ListMetrics(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, metrics)
}

// Snapshot records a net-worth point for the caller right now, outside the
// scheduled sweep.
func (h *metricHandlers) Snapshot(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	m, err := h.MetricSvc.Snapshot(r.Context(), uid, time.Now())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, m)
}

// GetForecast parses the slider and simulation query parameters. All of them
// are optional; bad numbers are a validation error rather than silently zero.
func (h *metricHandlers) GetForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var args dto.ForecastArgs
	var err error
	if args.Income, err = queryFloat(q.Get("income"), 0); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("income must be a number"))
		return
	}
	if args.Cost, err = queryFloat(q.Get("cost"), 0); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("cost must be a number"))
		return
	}

	optional := []struct {
		name string
		dst  **float64
	}{
		{"currentNetWorth", &args.CurrentNetWorth},
		{"currentAssets", &args.CurrentAssets},
		{"currentDebts", &args.CurrentDebts},
		{"simNetWorth", &args.SimNetWorth},
		{"simAssets", &args.SimAssets},
		{"simDebts", &args.SimDebts},
	}
	for _, p := range optional {
		if *p.dst, err = queryFloatPtr(q.Get(p.name)); err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError(p.name+" must be a number"))
			return
		}
	}

	uid := middleware.UID(r.Context())
	forecast, err := h.ForecastSvc.GetForecast(r.Context(), uid, args)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, forecast)
}

func queryFloat(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func queryFloatPtr(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
