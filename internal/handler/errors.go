package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/identity"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because it knows what was looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", messageAfter(err, domain.ErrValidation))
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

// forbiddenBody returns an ErrorResponse for a caller lacking the staff role.
func forbiddenBody() gen.ErrorResponse {
	return errorBody("forbidden", "staff credentials required")
}

// classify maps a service error to its HTTP status and error body. It
// returns status 0 for errors it does not recognise.
func classify(ctx context.Context, err error) (int, gen.ErrorResponse) {
	var qe *domain.QueryError
	switch {
	case errors.As(err, &qe):
		return http.StatusBadGateway, errorBody("query_failed", qe.Detail)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, validationBody(err)
	case errors.Is(err, domain.ErrIncompleteContext):
		// Without a rider the missing context is the login itself.
		msg := messageAfter(err, domain.ErrIncompleteContext)
		if _, ok := identity.RiderID(ctx); !ok {
			return http.StatusUnauthorized, errorBody("login_required", msg)
		}
		return http.StatusUnprocessableEntity, errorBody("incomplete_context", msg)
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, errorBody("invalid_transition", messageAfter(err, domain.ErrInvalidTransition))
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, notFoundBody("not found")
	}
	return 0, gen.ErrorResponse{}
}

// responseErrorHandler reports errors a handler returned instead of a typed
// response. Known service errors keep their mapping; anything else is
// logged and reported as 500 without detail.
func (s *Server) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(r.Context(), err)
	if status == 0 {
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
		return
	}
	writeJSON(w, status, body)
}

// requestErrorHandler reports a request body the strict handler could not
// decode.
func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("body_too_large", "request body too large"))
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be valid JSON: "+err.Error()))
}

// paramErrorHandler reports a path or query parameter that failed to bind.
func paramErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// messageAfter extracts the human-readable part following a wrapped
// sentinel, e.g. "service.X: validation error: date is required" gives
// "date is required".
func messageAfter(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
