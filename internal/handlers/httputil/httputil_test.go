package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: id", domain.ErrInvalidArgument), http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("event 1: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrEventFinished, http.StatusConflict},
		{domain.ErrHasTransactions, http.StatusConflict},
		{domain.ErrHasEvents, http.StatusConflict},
		{domain.ErrNicknameTaken, http.StatusConflict},
		{domain.ErrKittyProtected, http.StatusConflict},
		{fmt.Errorf("find: %w: %w", domain.ErrStorage, errors.New("conn reset")), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, StatusFromError(tt.err))
		})
	}
}

func TestRespondWithServiceError_HidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithServiceError(rec, fmt.Errorf("find: %w: %w", domain.ErrStorage, errors.New("password=hunter2")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "10", want: 10},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.raw)
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			id, err := PathID(r, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestQueryID(t *testing.T) {
	id, err := QueryID(httptest.NewRequest(http.MethodGet, "/?event=10", nil), "event")
	require.NoError(t, err)
	assert.Equal(t, 10, id)

	id, err = QueryID(httptest.NewRequest(http.MethodGet, "/", nil), "event")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, err = QueryID(httptest.NewRequest(http.MethodGet, "/?event=x", nil), "event")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("date", "2016-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("date", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("date", "01.09.2016")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCurrentUser(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := CurrentUser(r)
	assert.False(t, ok)

	r = r.WithContext(auth.WithUserID(r.Context(), 7))
	id, ok := CurrentUser(r)
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}
