package repo

import (
	"context"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/pg"
	eventrepo "github.com/GlebRadaev/cheapy/internal/repo/event-repo"
	transactionrepo "github.com/GlebRadaev/cheapy/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/cheapy/internal/repo/user-repo"
	"github.com/GlebRadaev/cheapy/internal/service/authservice"
	"github.com/GlebRadaev/cheapy/internal/service/eventservice"
	"github.com/GlebRadaev/cheapy/internal/service/settlementservice"
	"github.com/GlebRadaev/cheapy/internal/service/transactionservice"
	"github.com/GlebRadaev/cheapy/internal/service/userservice"
)

type UserRepo interface {
	authservice.Repo
	userservice.Repo
	transactionservice.UserFinder
	settlementservice.UserFinder
	EnsureKitty(ctx context.Context, nickname string) (*domain.User, error)
}

type EventRepo interface {
	eventservice.Repo
	settlementservice.EventFinder
	userservice.EventCounter
}

type TransactionRepo interface {
	transactionservice.Repo
	settlementservice.TransactionFinder
	userservice.TransactionCounter
	eventservice.TransactionCounter
}

type Repositories struct {
	UserRepo        UserRepo
	EventRepo       EventRepo
	TransactionRepo TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		EventRepo:       eventrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn, txManager),
	}
}
