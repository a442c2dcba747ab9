package eventservice

//go:generate mockgen -source=eventservice.go -destination=mock_eventservice.go -package=eventservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Finish(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	CountByAdmin(ctx context.Context, adminID int) (int, error)
}

type TransactionCounter interface {
	Count(ctx context.Context, f domain.TransactionFilter) (int, error)
}

type Credentials interface {
	Reauthenticate(ctx context.Context, userID int, password string) error
}

type Service struct {
	eventRepo   Repo
	txs         TransactionCounter
	credentials Credentials
}

func New(repo Repo, txs TransactionCounter, credentials Credentials) *Service {
	return &Service{
		eventRepo:   repo,
		txs:         txs,
		credentials: credentials,
	}
}

func (s *Service) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.Name = strings.TrimSpace(event.Name)
	switch {
	case event.AdminID <= 0:
		return nil, fmt.Errorf("%w: admin id %d", domain.ErrInvalidArgument, event.AdminID)
	case event.Name == "":
		return nil, fmt.Errorf("%w: empty event name", domain.ErrInvalidArgument)
	case event.StartDate.IsZero() || event.EndDate.IsZero():
		return nil, fmt.Errorf("%w: event dates are required", domain.ErrInvalidArgument)
	case event.EndDate.Before(event.StartDate):
		return nil, fmt.Errorf("%w: event ends before it starts", domain.ErrInvalidArgument)
	}
	event.Finished = false

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		zap.L().Error("can't create event", zap.Error(err))
		return nil, err
	}
	zap.L().Info("event created", zap.Int("event_id", created.ID), zap.Int("admin_id", created.AdminID))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: event id %d", domain.ErrInvalidArgument, id)
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}
	return event, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// Finish closes the event for new transactions. Only its admin may do so;
// finishing twice is a no-op.
func (s *Service) Finish(ctx context.Context, actorID, id int) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.AdminID != actorID {
		return nil, domain.ErrForbidden
	}
	if event.Finished {
		return event, nil
	}

	ok, err := s.eventRepo.Finish(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}
	event.Finished = true
	zap.L().Info("event finished", zap.Int("event_id", id))
	return event, nil
}

// Delete removes an event without transactions. The admin must confirm with
// their password.
func (s *Service) Delete(ctx context.Context, actorID, id int, password string) error {
	event, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if event.AdminID != actorID {
		return domain.ErrForbidden
	}
	if err := s.credentials.Reauthenticate(ctx, actorID, password); err != nil {
		return err
	}

	count, err := s.txs.Count(ctx, domain.TransactionFilter{EventID: id})
	if err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("event still has transactions", zap.Int("event_id", id), zap.Int("transactions", count))
		return domain.ErrHasTransactions
	}

	ok, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("event deleted", zap.Int("event_id", id))
	return nil
}

// CountForAdmin reports how many events adminID administers.
func (s *Service) CountForAdmin(ctx context.Context, adminID int) (int, error) {
	if adminID <= 0 {
		return 0, fmt.Errorf("%w: admin id %d", domain.ErrInvalidArgument, adminID)
	}
	return s.eventRepo.CountByAdmin(ctx, adminID)
}
