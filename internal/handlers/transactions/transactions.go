package transactions

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/dto"
	"github.com/GlebRadaev/cheapy/internal/handlers/httputil"
	"github.com/GlebRadaev/cheapy/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	Get(ctx context.Context, id int) (*domain.Transaction, error)
	List(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, userID, eventID int) (int, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Add godoc
//
//	@Summary		Record a transaction
//	@Description	Giver pays receiver within an open event
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.TransactionRequestDTO	true	"Transaction"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid transaction"
//	@Failure		404		{object}	utils.Response	"Unknown user or event"
//	@Failure		409		{object}	utils.Response	"Event is finished"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := httputil.ParseDate("date", req.Date)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}

	t, err := h.transactionService.Add(r.Context(), &domain.Transaction{
		GiverID:     req.GiverID,
		ReceiverID:  req.ReceiverID,
		EventID:     req.EventID,
		Amount:      req.Amount,
		Date:        date,
		Place:       req.Place,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TransactionFromDomain(*t))
}

// List godoc
//
//	@Summary	List transactions
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		user	query		int	false	"User on either side"
//	@Param		event	query		int	false	"Event ID"
//	@Success	200		{array}		dto.TransactionResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid filter"
//	@Router		/api/transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	txs, err := h.transactionService.List(r.Context(), f)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Get godoc
//
//	@Summary	Get a transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Transaction ID"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/transactions/{id} [get]
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	t, err := h.transactionService.Get(r.Context(), id)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionFromDomain(*t))
}

// Delete godoc
//
//	@Summary	Delete a transaction
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Transaction ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	if err := h.transactionService.Delete(r.Context(), id); err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Count godoc
//
//	@Summary		Count transactions
//	@Description	Counts by user (either side) and/or event; with neither given the count is 0
//	@Tags			Transactions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			user	query		int	false	"User ID"
//	@Param			event	query		int	false	"Event ID"
//	@Success		200		{object}	dto.CountResponseDTO
//	@Router			/api/transactions/count [get]
func (h *TransactionHandler) Count(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	count, err := h.transactionService.Count(r.Context(), f.UserID, f.EventID)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: count})
}

func filterFromQuery(r *http.Request) (domain.TransactionFilter, error) {
	userID, err := httputil.QueryID(r, "user")
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	eventID, err := httputil.QueryID(r, "event")
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	return domain.TransactionFilter{UserID: userID, EventID: eventID}, nil
}
