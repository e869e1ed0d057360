package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/RyanCwynar/byldr-finance-backend/internal/bootstrap"
	"github.com/RyanCwynar/byldr-finance-backend/internal/config"
	"github.com/RyanCwynar/byldr-finance-backend/internal/handlers"
	"github.com/RyanCwynar/byldr-finance-backend/internal/response"
	"github.com/RyanCwynar/byldr-finance-backend/internal/router"
	"github.com/RyanCwynar/byldr-finance-backend/internal/services"
	"github.com/RyanCwynar/byldr-finance-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	rstore := store.NewRecurringTransactionStore(bs.Firestore)
	ostore := store.NewOneTimeTransactionStore(bs.Firestore)
	dstore := store.NewDebtStore(bs.Firestore)
	astore := store.NewAssetStore(bs.Firestore)
	mstore := store.NewMetricStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	tserv := services.NewTransactionService(rstore, ostore)
	dserv := services.NewDebtService(dstore)
	aserv := services.NewAssetService(astore)
	mserv := services.NewMetricService(mstore, astore, dstore)
	fserv := services.NewForecastService(mstore, rstore, ostore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.DebtSvc = dserv
	deps.AssetSvc = aserv
	deps.MetricSvc = mserv
	deps.ForecastSvc = fserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
