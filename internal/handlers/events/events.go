package events

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

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
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Get(ctx context.Context, id int) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Finish(ctx context.Context, actorID, id int) (*domain.Event, error)
	Delete(ctx context.Context, actorID, id int, password string) error
	CountForAdmin(ctx context.Context, adminID int) (int, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Create godoc
//
//	@Summary		Create an event
//	@Description	The authenticated user becomes the event admin
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.EventRequestDTO	true	"Event"
//	@Success		201		{object}	dto.EventResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := httputil.CurrentUser(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.EventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := httputil.ParseDate("start_date", req.StartDate)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	end, err := httputil.ParseDate("end_date", req.EndDate)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}

	event, err := h.eventService.Create(r.Context(), &domain.Event{
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		AdminID:     adminID,
		Place:       req.Place,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.EventFromDomain(*event))
}

// List godoc
//
//	@Summary	List events
//	@Tags		Events
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.EventResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EventsFromDomain(events))
}

// Get godoc
//
//	@Summary	Get an event
//	@Tags		Events
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Event ID"
//	@Success	200	{object}	dto.EventResponseDTO
//	@Failure	404	{object}	utils.Response	"Event not found"
//	@Router		/api/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	event, err := h.eventService.Get(r.Context(), id)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EventFromDomain(*event))
}

// Finish godoc
//
//	@Summary		Finish an event
//	@Description	A finished event accepts no new transactions. Admin only.
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Event ID"
//	@Success		200	{object}	dto.EventResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the event admin"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id}/finish [post]
func (h *EventHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	actorID, _ := httputil.CurrentUser(r)
	event, err := h.eventService.Finish(r.Context(), actorID, id)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EventFromDomain(*event))
}

// Delete godoc
//
//	@Summary		Delete an event
//	@Description	Only events without transactions; the admin confirms with a password
//	@Tags			Events
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	int						true	"Event ID"
//	@Param			request	body	dto.PasswordRequestDTO	true	"Password confirmation"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not the event admin"
//	@Failure		409	{object}	utils.Response	"Event has transactions"
//	@Router			/api/events/{id} [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	var req dto.PasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actorID, _ := httputil.CurrentUser(r)
	if err := h.eventService.Delete(r.Context(), actorID, id, req.Password); err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CountForAdmin godoc
//
//	@Summary	Count events administered by a user
//	@Tags		Events
//	@Produce	json
//	@Security	BearerAuth
//	@Param		admin	query		int	true	"Admin user ID"
//	@Success	200		{object}	dto.CountResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid admin id"
//	@Router		/api/events/count [get]
func (h *EventHandler) CountForAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, err := httputil.QueryID(r, "admin")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	count, err := h.eventService.CountForAdmin(r.Context(), adminID)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: count})
}
