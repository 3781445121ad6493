// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ledger-service/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(transactionHandler *handler.TransactionHandler, userHandler *handler.UserHandler) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", transactionHandler.Create)
		r.Get("/", transactionHandler.List)
		r.Get("/{transactionID}", transactionHandler.Get)
		r.Patch("/{transactionID}", transactionHandler.Update)
		r.Delete("/{transactionID}", transactionHandler.Delete)
	})

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/", userHandler.Get)
		r.Get("/transactions", userHandler.Transactions)
		r.Post("/balance/sync", userHandler.SyncBalance)
	})

	return r
}
