package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/pkg/auth"
	"github.com/GlebRadaev/cheapy/pkg/validate"
	"go.uber.org/zap"
)

const tokenTTL = 15 * time.Minute

type Repo interface {
	FindByNickname(ctx context.Context, nickname string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, name, nickname, email, password string, birthdate time.Time) (*domain.User, error) {
	nickname = strings.TrimSpace(nickname)
	if !validate.IsNickname(nickname) {
		return nil, fmt.Errorf("%w: nickname %q", domain.ErrInvalidArgument, nickname)
	}
	if !validate.IsEmail(email) {
		return nil, fmt.Errorf("%w: email %q", domain.ErrInvalidArgument, email)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", domain.ErrInvalidArgument)
	}

	existingUser, err := s.userRepo.FindByNickname(ctx, nickname)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("nickname", nickname))
		return nil, domain.ErrNicknameTaken
	}

	user, err := domain.NewUserWithPassword(s.hashService, strings.TrimSpace(name), nickname,
		strings.ToLower(strings.TrimSpace(email)), password, birthdate)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("nickname", nickname))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, nickname, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByNickname(ctx, strings.TrimSpace(nickname))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		zap.L().Info("invalid credentials", zap.String("nickname", nickname))
		return nil, domain.ErrInvalidCredentials
	}

	zap.L().Info("user successfully authenticated", zap.String("nickname", nickname))
	return user, nil
}

// Reauthenticate confirms the password of an already identified user before
// a destructive action.
func (s *Service) Reauthenticate(ctx context.Context, userID int, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil || !s.hashService.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		zap.L().Info("reauthentication failed", zap.Int("user_id", userID))
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
