// internal/api/handler/transaction.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ledger-service/internal/api/types"
	"ledger-service/internal/domain"
	"ledger-service/internal/service"
)

// TransactionHandler handles HTTP requests related to transaction records.
type TransactionHandler struct {
	responder
	service service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// Create handles transaction creation.
// POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	in, err := domain.NewCreateTransactionInput(req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	transaction, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Transaction created", "transactionID", transaction.ID, "userID", transaction.UserID)
	h.respondWithJSON(w, http.StatusCreated, transaction)
}

// List returns one page of all transactions.
// GET /transactions?page=1&limit=10
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	req := pageParams(r)
	page, err := h.service.FindAll(r.Context(), req.Page, req.Limit)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithPage(w, page)
}

// Get returns a single transaction.
// GET /transactions/{transactionID}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.service.FindOne(r.Context(), chi.URLParam(r, "transactionID"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, transaction)
}

// Update applies a partial update.
// PATCH /transactions/{transactionID}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	patch, err := domain.NewTransactionPatch(req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	transaction, err := h.service.Update(r.Context(), chi.URLParam(r, "transactionID"), patch)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, transaction)
}

// Delete removes a transaction.
// DELETE /transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	message, err := h.service.Remove(r.Context(), chi.URLParam(r, "transactionID"))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.MessageResponse{Message: message})
}
