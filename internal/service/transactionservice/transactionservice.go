package transactionservice

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

import (
	"context"
	"fmt"
	"math"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	Find(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
	Count(ctx context.Context, f domain.TransactionFilter) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	txRepo Repo
	users  UserFinder
}

func New(repo Repo, users UserFinder) *Service {
	return &Service{
		txRepo: repo,
		users:  users,
	}
}

// Add records a payment. Both users must exist and the event must still be
// open; the open check happens under the event row lock in the store.
func (s *Service) Add(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	for _, id := range []int{t.GiverID, t.ReceiverID} {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
	}

	created, err := s.txRepo.Create(ctx, t)
	if err != nil {
		zap.L().Info("transaction rejected", zap.Int("event_id", t.EventID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("transaction added",
		zap.Int("transaction_id", created.ID),
		zap.Int("event_id", created.EventID),
		zap.String("amount", domain.FormatAmount(created.Amount)),
	)
	return created, nil
}

func validate(t *domain.Transaction) error {
	switch {
	case t.GiverID <= 0:
		return fmt.Errorf("%w: giver id %d", domain.ErrInvalidArgument, t.GiverID)
	case t.ReceiverID <= 0:
		return fmt.Errorf("%w: receiver id %d", domain.ErrInvalidArgument, t.ReceiverID)
	case t.EventID <= 0:
		return fmt.Errorf("%w: event id %d", domain.ErrInvalidArgument, t.EventID)
	case t.GiverID == t.ReceiverID:
		return fmt.Errorf("%w: giver and receiver are the same user", domain.ErrInvalidArgument)
	case math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) || t.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	case t.Date.IsZero():
		return fmt.Errorf("%w: transaction date is required", domain.ErrInvalidArgument)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Transaction, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: transaction id %d", domain.ErrInvalidArgument, id)
	}
	t, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txRepo.Find(ctx, f)
}

// Delete removes a transaction regardless of its event state.
func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: transaction id %d", domain.ErrInvalidArgument, id)
	}
	ok, err := s.txRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("transaction deleted", zap.Int("transaction_id", id))
	return nil
}

// Count counts the transactions of userID (either side) and/or eventID.
// With both ids absent it returns 0 without touching the store.
func (s *Service) Count(ctx context.Context, userID, eventID int) (int, error) {
	f := domain.TransactionFilter{UserID: userID, EventID: eventID}
	if f.IsEmpty() {
		return 0, nil
	}
	if userID > 0 {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		if user == nil {
			return 0, fmt.Errorf("%w: unknown user %d", domain.ErrInvalidArgument, userID)
		}
	}
	return s.txRepo.Count(ctx, f)
}
