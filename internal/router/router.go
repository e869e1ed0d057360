package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/RyanCwynar/byldr-finance-backend/internal/handlers"
	"github.com/RyanCwynar/byldr-finance-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	mw := middleware.NewMiddleware(deps.Firebase)
	lmw := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(chimiddleware.RequestID)
	r.Use(lmw.LoggerMiddleware)
	r.Use(mw.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	tsh := handlers.NewTransactionHandlers(deps)
	dbh := handlers.NewDebtHandlers(deps)
	ash := handlers.NewAssetHandlers(deps)
	msh := handlers.NewMetricHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/transactions", tsh.TransactionRoutes())
	r.Mount("/debts", dbh.DebtRoutes())
	r.Mount("/assets", ash.AssetRoutes())
	r.Mount("/metrics", msh.MetricRoutes())
	r.Mount("/forecast", msh.ForecastRoutes())
	return r
}
