package users

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

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
	Get(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int, password string) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsersFromDomain(users))
}

// Get godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserFromDomain(*user))
}

// Delete godoc
//
//	@Summary		Delete own account
//	@Description	Only possible without transactions and administered events
//	@Tags			Users
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	int						true	"User ID"
//	@Param			request	body	dto.PasswordRequestDTO	true	"Password confirmation"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"Invalid credentials"
//	@Failure		403	{object}	utils.Response	"Not your account"
//	@Failure		409	{object}	utils.Response	"User still has transactions or events"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	if current, ok := httputil.CurrentUser(r); !ok || current != id {
		httputil.RespondWithServiceError(w, domain.ErrForbidden)
		return
	}
	var req dto.PasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.userService.Delete(r.Context(), id, req.Password); err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
