package settlements

//go:generate mockgen -source=settlements.go -destination=mock_settlements.go -package=settlements

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/dto"
	"github.com/GlebRadaev/cheapy/internal/handlers/httputil"
	"github.com/GlebRadaev/cheapy/internal/settlement"
	"github.com/GlebRadaev/cheapy/pkg/utils"
)

type Service interface {
	KittyBalance(ctx context.Context, eventID int, mode domain.BalanceMode) (domain.Amount, error)
	ParticipantCount(ctx context.Context, eventID int) (int, error)
	NetBalance(ctx context.Context, eventID, giverID, receiverID int) (domain.Amount, error)
	Summary(ctx context.Context, eventID int) (settlement.Summary, error)
	Summaries(ctx context.Context) ([]settlement.Summary, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// KittyBalance godoc
//
//	@Summary		Kitty balance of an event
//	@Description	Gross mode sums payments into the kitty; net mode subtracts payments out of it
//	@Tags			Settlement
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"Event ID"
//	@Param			mode	query		string	false	"gross or net"	Enums(gross, net)
//	@Success		200		{object}	dto.KittyBalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid event or mode"
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id}/kitty-balance [get]
func (h *SettlementHandler) KittyBalance(w http.ResponseWriter, r *http.Request) {
	eventID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	mode, err := domain.ParseBalanceMode(r.URL.Query().Get("mode"))
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	amount, err := h.settlementService.KittyBalance(r.Context(), eventID, mode)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.KittyBalanceResponseDTO{
		EventID: eventID,
		Mode:    string(mode),
		Balance: dto.AmountFromDomain(amount),
	})
}

// ParticipantCount godoc
//
//	@Summary		Participants of an event
//	@Description	Distinct people who appear in the event's transactions, the kitty excluded
//	@Tags			Settlement
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Event ID"
//	@Success		200	{object}	dto.ParticipantCountResponseDTO
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id}/participant-count [get]
func (h *SettlementHandler) ParticipantCount(w http.ResponseWriter, r *http.Request) {
	eventID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	count, err := h.settlementService.ParticipantCount(r.Context(), eventID)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ParticipantCountResponseDTO{EventID: eventID, Count: count})
}

// NetBalance godoc
//
//	@Summary		Net balance between two users
//	@Description	What giver paid receiver minus what receiver paid giver within the event
//	@Tags			Settlement
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int	true	"Event ID"
//	@Param			giver		query		int	true	"Giver user ID"
//	@Param			receiver	query		int	true	"Receiver user ID"
//	@Success		200			{object}	dto.NetBalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid ids"
//	@Failure		404			{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id}/net-balance [get]
func (h *SettlementHandler) NetBalance(w http.ResponseWriter, r *http.Request) {
	eventID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	giverID, err := httputil.QueryID(r, "giver")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	receiverID, err := httputil.QueryID(r, "receiver")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	amount, err := h.settlementService.NetBalance(r.Context(), eventID, giverID, receiverID)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NetBalanceResponseDTO{
		EventID:    eventID,
		GiverID:    giverID,
		ReceiverID: receiverID,
		Balance:    dto.AmountFromDomain(amount),
	})
}

// Summary godoc
//
//	@Summary	Settlement summary of an event
//	@Tags		Settlement
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Event ID"
//	@Success	200	{object}	dto.SummaryResponseDTO
//	@Failure	404	{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id}/summary [get]
func (h *SettlementHandler) Summary(w http.ResponseWriter, r *http.Request) {
	eventID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	summary, err := h.settlementService.Summary(r.Context(), eventID)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// Summaries godoc
//
//	@Summary	Settlement summaries of all events
//	@Tags		Settlement
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.SummaryResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/summaries [get]
func (h *SettlementHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.settlementService.Summaries(r.Context())
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummariesFromDomain(summaries))
}
