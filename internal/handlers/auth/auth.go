package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/dto"
	"github.com/GlebRadaev/cheapy/internal/handlers/httputil"
	"github.com/GlebRadaev/cheapy/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, nickname, email, password string, birthdate time.Time) (*domain.User, error)
	Authenticate(ctx context.Context, nickname, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// respondWithToken signs a token for userID, exposes it in the Authorization
// header and writes body.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, userID int, body any) {
	token, err := h.authService.GenerateToken(userID)
	if err != nil {
		zap.L().Error("can't sign token", zap.Int("user_id", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, body)
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account; the password is stored as a salted argon2id hash
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Nickname already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if json.NewDecoder(r.Body).Decode(&req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	birthdate, err := httputil.ParseDate("birthdate", req.Birthdate)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Nickname, req.Email, req.Password, birthdate)
	if err != nil {
		httputil.RespondWithServiceError(w, err)
		return
	}
	h.respondWithToken(w, user.ID, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with nickname and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if json.NewDecoder(r.Body).Decode(&req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Nickname, req.Password)
	switch {
	case err == nil:
		h.respondWithToken(w, user.ID, dto.LoginResponseDTO{Message: "User successfully authenticated"})
	case httputil.StatusFromError(err) == http.StatusInternalServerError:
		httputil.RespondWithServiceError(w, err)
	default:
		// Unknown nickname and wrong password look the same to the caller.
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	}
}
