package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/segyhp/loan-guide/pkg/response"
)

// NewRouter mounts the health and loan guide routes
func NewRouter(loanGuideHandler *LoanGuideHandler, healthHandler *HealthHandler, log logrus.FieldLogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware, response.LoggingMiddleware(log))

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods(http.MethodGet)

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/loans/{loanId}/guide", loanGuideHandler.GetLoanGuide).Methods(http.MethodGet)
	api.HandleFunc("/loans/{loanId}/guide/export", loanGuideHandler.ExportLoanGuide).Methods(http.MethodGet)
	api.HandleFunc("/loans/{loanId}/guide/refresh", loanGuideHandler.RefreshLoanGuide).Methods(http.MethodPost)

	return router
}
