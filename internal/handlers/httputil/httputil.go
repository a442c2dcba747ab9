// Package httputil holds the request parsing and error mapping shared by the
// HTTP handlers.
package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/pkg/auth"
	"github.com/GlebRadaev/cheapy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// StatusFromError maps the domain error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEventFinished),
		errors.Is(err, domain.ErrHasTransactions),
		errors.Is(err, domain.ErrHasEvents),
		errors.Is(err, domain.ErrNicknameTaken),
		errors.Is(err, domain.ErrKittyProtected):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithServiceError writes err with its mapped status. Internal errors
// are logged and hidden from the client.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	code := StatusFromError(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// PathID reads a positive integer URL parameter.
func PathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidArgument, name)
	}
	return id, nil
}

// QueryID reads an optional integer query parameter; absent means 0.
func QueryID(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidArgument, name)
	}
	return id, nil
}

// ParseDate parses a DateLayout date; empty input yields the zero time.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must look like %s", domain.ErrInvalidArgument, field, DateLayout)
	}
	return t, nil
}

// CurrentUser returns the id put in the context by auth.AuthMiddleware.
func CurrentUser(r *http.Request) (int, bool) {
	return auth.UserID(r.Context())
}
