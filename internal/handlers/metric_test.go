package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

// --- Stub services ---

type stubMetricService struct {
	metrics  []models.DailyMetric
	snapshot *models.DailyMetric
	err      error
}

func (s *stubMetricService) ListMetrics(_ context.Context, _ string) ([]models.DailyMetric, error) {
	return s.metrics, s.err
}

func (s *stubMetricService) Snapshot(_ context.Context, _ string, _ time.Time) (*models.DailyMetric, error) {
	return s.snapshot, s.err
}

type stubForecastService struct {
	result   dto.ForecastResult
	err      error
	lastArgs dto.ForecastArgs
}

func (s *stubForecastService) GetForecast(_ context.Context, _ string, args dto.ForecastArgs) (dto.ForecastResult, error) {
	s.lastArgs = args
	return s.result, s.err
}

// --- Tests ---

func TestListMetrics_OK(t *testing.T) {
	svc := &stubMetricService{metrics: []models.DailyMetric{{MetricID: "m1"}}}
	resp := &stubResponseHandler{}
	h := NewMetricHandlers(&Deps{ResponseHandler: resp, MetricSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.ListMetrics(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess 200")
	}
}

func TestSnapshot_OK(t *testing.T) {
	svc := &stubMetricService{snapshot: &models.DailyMetric{MetricID: "m1", NetWorth: 1200}}
	resp := &stubResponseHandler{}
	h := NewMetricHandlers(&Deps{ResponseHandler: resp, MetricSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/metrics/snapshot", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Snapshot(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected WriteSuccess 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
}

func TestGetForecast_ParsesSliders(t *testing.T) {
	fsvc := &stubForecastService{result: dto.ForecastResult{HasData: true}}
	resp := &stubResponseHandler{}
	h := NewMetricHandlers(&Deps{ResponseHandler: resp, ForecastSvc: fsvc})

	req := httptest.NewRequest(http.MethodGet, "/forecast?income=500&cost=200&simAssets=2700", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.GetForecast(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
	if fsvc.lastArgs.Income != 500 || fsvc.lastArgs.Cost != 200 {
		t.Errorf("slider args mismatch: %+v", fsvc.lastArgs)
	}
	if fsvc.lastArgs.SimAssets == nil || *fsvc.lastArgs.SimAssets != 2700 {
		t.Errorf("simAssets mismatch: %+v", fsvc.lastArgs.SimAssets)
	}
	if fsvc.lastArgs.SimNetWorth != nil || fsvc.lastArgs.CurrentDebts != nil {
		t.Errorf("unset params should stay nil: %+v", fsvc.lastArgs)
	}
}

func TestGetForecast_DefaultsWithoutParams(t *testing.T) {
	fsvc := &stubForecastService{}
	resp := &stubResponseHandler{}
	h := NewMetricHandlers(&Deps{ResponseHandler: resp, ForecastSvc: fsvc})

	req := httptest.NewRequest(http.MethodGet, "/forecast", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.GetForecast(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
	if fsvc.lastArgs.Income != 0 || fsvc.lastArgs.Cost != 0 {
		t.Errorf("expected zero sliders, got %+v", fsvc.lastArgs)
	}
}

func TestGetForecast_BadNumber(t *testing.T) {
	fsvc := &stubForecastService{}
	resp := &stubResponseHandler{}
	h := NewMetricHandlers(&Deps{ResponseHandler: resp, ForecastSvc: fsvc})

	req := httptest.NewRequest(http.MethodGet, "/forecast?income=abc", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.GetForecast(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on bad number")
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on bad number")
	}
}
