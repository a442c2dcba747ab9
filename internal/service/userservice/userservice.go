package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type EventCounter interface {
	CountByAdmin(ctx context.Context, adminID int) (int, error)
}

type TransactionCounter interface {
	Count(ctx context.Context, f domain.TransactionFilter) (int, error)
}

type Credentials interface {
	Reauthenticate(ctx context.Context, userID int, password string) error
}

type Service struct {
	userRepo    Repo
	events      EventCounter
	txs         TransactionCounter
	credentials Credentials
}

func New(repo Repo, events EventCounter, txs TransactionCounter, credentials Credentials) *Service {
	return &Service{
		userRepo:    repo,
		events:      events,
		txs:         txs,
		credentials: credentials,
	}
}

func (s *Service) Get(ctx context.Context, id int) (*domain.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id %d", domain.ErrInvalidArgument, id)
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

// List returns every real user. The kitty is not a person and is left out.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	people := make([]domain.User, 0, len(users))
	for _, u := range users {
		if !u.IsKitty {
			people = append(people, u)
		}
	}
	return people, nil
}

// Delete removes a user who neither administers an event nor took part in
// a transaction. The user's own password is required.
func (s *Service) Delete(ctx context.Context, id int, password string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.IsKitty {
		return domain.ErrKittyProtected
	}
	if err := s.credentials.Reauthenticate(ctx, id, password); err != nil {
		return err
	}

	events, err := s.events.CountByAdmin(ctx, id)
	if err != nil {
		return err
	}
	if events > 0 {
		zap.L().Info("user still administers events", zap.Int("user_id", id), zap.Int("events", events))
		return domain.ErrHasEvents
	}

	txs, err := s.txs.Count(ctx, domain.TransactionFilter{UserID: id})
	if err != nil {
		return err
	}
	if txs > 0 {
		zap.L().Info("user still has transactions", zap.Int("user_id", id), zap.Int("transactions", txs))
		return domain.ErrHasTransactions
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("user deleted", zap.Int("user_id", id))
	return nil
}
