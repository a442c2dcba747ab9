package transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func serve(h *TransactionHandler, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/transactions", h.Add)
	r.Get("/api/transactions", h.List)
	r.Get("/api/transactions/count", h.Count)
	r.Get("/api/transactions/{id}", h.Get)
	r.Delete("/api/transactions/{id}", h.Delete)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rr
}

func TestAdd(t *testing.T) {
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"giver_id":2,"receiver_id":1,"event_id":10,"amount":30,"date":"2016-09-01","place":"Warsaw"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Add(gomock.Any(), &domain.Transaction{
					GiverID: 2, ReceiverID: 1, EventID: 10, Amount: 30, Date: day, Place: "Warsaw",
				}).DoAndReturn(func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					tx.ID = 7
					return tx, nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{"giver_id":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid date",
			body:         `{"giver_id":2,"receiver_id":1,"event_id":10,"amount":30,"date":"01/09/2016"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Finished event",
			body: `{"giver_id":2,"receiver_id":1,"event_id":10,"amount":30,"date":"2016-09-01"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEventFinished)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown user",
			body: `{"giver_id":2,"receiver_id":99,"event_id":10,"amount":30,"date":"2016-09-01"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := serve(handler, http.MethodPost, "/api/transactions", tt.body)
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 7, resp.ID)
				assert.Equal(t, "2016-09-01", resp.Date)
			}
		})
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "By event",
			target: "/api/transactions?event=10",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), domain.TransactionFilter{EventID: 10}).
					Return([]domain.Transaction{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "By user and event",
			target: "/api/transactions?user=2&event=10",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), domain.TransactionFilter{UserID: 2, EventID: 10}).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "Bad user id",
			target:       "/api/transactions?user=bruno",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := serve(handler, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGet(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Get(gomock.Any(), 7).Return(&domain.Transaction{ID: 7, Amount: 30}, nil)
	service.EXPECT().Get(gomock.Any(), 8).Return(nil, domain.ErrNotFound)

	rr := serve(handler, http.MethodGet, "/api/transactions/7", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(handler, http.MethodGet, "/api/transactions/8", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(handler, http.MethodGet, "/api/transactions/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDelete(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Delete(gomock.Any(), 7).Return(nil)
	service.EXPECT().Delete(gomock.Any(), 8).Return(domain.ErrNotFound)

	rr := serve(handler, http.MethodDelete, "/api/transactions/7", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(handler, http.MethodDelete, "/api/transactions/8", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCount(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Count(gomock.Any(), 2, 10).Return(4, nil)
	service.EXPECT().Count(gomock.Any(), 0, 0).Return(0, nil)
	service.EXPECT().Count(gomock.Any(), 0, 11).Return(0, domain.ErrStorage)

	rr := serve(handler, http.MethodGet, "/api/transactions/count?user=2&event=10", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CountResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 4, resp.Count)

	rr = serve(handler, http.MethodGet, "/api/transactions/count", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Count)

	rr = serve(handler, http.MethodGet, "/api/transactions/count?event=11", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
