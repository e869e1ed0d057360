package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/RyanCwynar/byldr-finance-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         userService
	TransactionSvc  transactionService
	DebtSvc         debtService
	AssetSvc        assetService
	MetricSvc       metricService
	ForecastSvc     forecastService
}
