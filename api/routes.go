package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/calendar"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/dashboard"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/reminder"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handle))

	apiMux := http.NewServeMux()
	humaAPI := humago.New(apiMux, huma.DefaultConfig("finance-tracker", "1.0.0"))

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	dashboard.NewSummaryHandler(r.Service.Summary).Register(humaAPI)
	dashboard.NewBalanceHandler(r.Service.Summary).Register(humaAPI)
	dashboard.NewRecentHandler(r.Service.Summary).Register(humaAPI)

	calendar.NewMonthHandler(r.Service.Summary).Register(humaAPI)
	calendar.NewDateHandler(r.Service.Summary).Register(humaAPI)

	reminder.NewCreateReminderHandler(r.Operator).Register(humaAPI)
	reminder.NewListRemindersHandler(r.Service.Reminder).Register(humaAPI)
	reminder.NewGetReminderHandler(r.Service.Reminder).Register(humaAPI)
	reminder.NewUpdateReminderHandler(r.Operator).Register(humaAPI)
	reminder.NewDeleteReminderHandler(r.Operator).Register(humaAPI)

	mux.Handle("/v1/", logging.Middleware(r.Logger)(apiMux))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
