// internal/api/handler/response.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ledger-service/internal/api/types"
	"ledger-service/internal/domain"
	"ledger-service/internal/util"
)

// DefaultTimeout bounds every request served by the router.
const DefaultTimeout = 30 * time.Second

// responder writes JSON bodies and maps service errors onto status codes.
type responder struct {
	logger *slog.Logger
}

// Helper function to send JSON responses.
func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h responder) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	body := types.ErrorResponse{Error: "Internal server error"}

	var verr *util.ValidationError
	switch {
	case errors.As(err, &verr):
		statusCode = http.StatusBadRequest
		body = types.ErrorResponse{Error: util.ErrInvalidInput.Error(), Details: verr.Fields}
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		body.Error = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		body.Error = err.Error()
	default:
		h.logger.ErrorContext(r.Context(), "Unhandled service error", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	h.respondWithJSON(w, statusCode, body)
}

func (h responder) respondWithPage(w http.ResponseWriter, page *domain.TransactionPage) {
	data := page.Data
	if data == nil {
		data = []domain.Transaction{}
	}
	h.respondWithJSON(w, http.StatusOK, types.PaginatedResponse[domain.Transaction]{
		Data: data,
		Pagination: types.Pagination{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
		},
	})
}

// decodeJSON reads a single JSON object from the request body. Unknown fields are ignored.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &util.ValidationError{Fields: []util.FieldError{{Field: "body", Message: "Malformed JSON: " + err.Error(), Type: "json"}}}
	}
	return nil
}

// pageParams reads the page and limit query parameters.
func pageParams(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	return domain.ParsePageParams(q.Get("page"), q.Get("limit"))
}
