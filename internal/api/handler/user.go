// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ledger-service/internal/service"
)

// UserHandler serves user reads and balance synchronisation.
type UserHandler struct {
	responder
	service service.TransactionService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.TransactionService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// Get returns the user, including the balance as of the last sync.
// GET /users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, user)
}

// Transactions returns one page of the user's transactions.
// GET /users/{userID}/transactions?page=1&limit=10
func (h *UserHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	req := pageParams(r)
	page, err := h.service.FindByUser(r.Context(), chi.URLParam(r, "userID"), req.Page, req.Limit)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithPage(w, page)
}

// SyncBalance recomputes the balance and returns the user as stored afterwards.
// A failed sync is logged by the service; the response then shows the previous balance.
// POST /users/{userID}/balance/sync
func (h *UserHandler) SyncBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	h.service.SyncUserBalance(r.Context(), userID)

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusAccepted, user)
}
