package service

import (
	"github.com/GlebRadaev/cheapy/internal/config"
	"github.com/GlebRadaev/cheapy/internal/handlers/auth"
	"github.com/GlebRadaev/cheapy/internal/handlers/events"
	"github.com/GlebRadaev/cheapy/internal/handlers/settlements"
	"github.com/GlebRadaev/cheapy/internal/handlers/transactions"
	"github.com/GlebRadaev/cheapy/internal/handlers/users"
	"github.com/GlebRadaev/cheapy/internal/workerpool"

	pkgauth "github.com/GlebRadaev/cheapy/pkg/auth"

	"github.com/GlebRadaev/cheapy/internal/repo"
	authservice "github.com/GlebRadaev/cheapy/internal/service/authservice"
	eventservice "github.com/GlebRadaev/cheapy/internal/service/eventservice"
	settlementservice "github.com/GlebRadaev/cheapy/internal/service/settlementservice"
	transactionservice "github.com/GlebRadaev/cheapy/internal/service/transactionservice"
	userservice "github.com/GlebRadaev/cheapy/internal/service/userservice"
)

type Services struct {
	AuthService        auth.Service
	UserService        users.Service
	EventService       events.Service
	TransactionService transactions.Service
	SettlementService  settlements.Service
	JWTService         pkgauth.JWTServiceInterface
}

func New(
	repo *repo.Repositories,
	cfg *config.Config,
	pool workerpool.WorkerPoolI,
	observer settlementservice.Observer,
	kittyID int,
) *Services {
	hashService := pkgauth.NewHashService(cfg.HashTime, cfg.HashMemoryKB, cfg.HashThreads)
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repo.UserRepo, hashService, jwtService)
	userService := userservice.New(repo.UserRepo, repo.EventRepo, repo.TransactionRepo, authService)
	eventService := eventservice.New(repo.EventRepo, repo.TransactionRepo, authService)
	transactionService := transactionservice.New(repo.TransactionRepo, repo.UserRepo)
	settlementService := settlementservice.New(repo.TransactionRepo, repo.EventRepo, repo.UserRepo, pool, observer, kittyID)

	return &Services{
		AuthService:        authService,
		UserService:        userService,
		EventService:       eventService,
		TransactionService: transactionService,
		SettlementService:  settlementService,
		JWTService:         jwtService,
	}
}
