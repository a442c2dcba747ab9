package settlementservice

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/settlement"
	"github.com/GlebRadaev/cheapy/internal/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TransactionFinder interface {
	Find(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
}

type EventFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Observer interface {
	ObserveSettlement(kind string, err error)
}

// Service loads an event's transactions and hands them to the settlement
// engine. The kitty id is fixed for the lifetime of the service.
type Service struct {
	txs      TransactionFinder
	events   EventFinder
	users    UserFinder
	pool     workerpool.WorkerPoolI
	observer Observer
	kittyID  int
}

func New(txs TransactionFinder, events EventFinder, users UserFinder, pool workerpool.WorkerPoolI, observer Observer, kittyID int) *Service {
	return &Service{
		txs:      txs,
		events:   events,
		users:    users,
		pool:     pool,
		observer: observer,
		kittyID:  kittyID,
	}
}

func (s *Service) KittyID() int {
	return s.kittyID
}

// eventTransactions checks that the event exists and returns its ledger.
func (s *Service) eventTransactions(ctx context.Context, eventID int) ([]domain.Transaction, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event id %d", domain.ErrInvalidArgument, eventID)
	}
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %d: %w", eventID, domain.ErrNotFound)
	}
	return s.txs.Find(ctx, domain.TransactionFilter{EventID: eventID})
}

func (s *Service) KittyBalance(ctx context.Context, eventID int, mode domain.BalanceMode) (amount domain.Amount, err error) {
	defer func() { s.observer.ObserveSettlement("kitty_balance", err) }()

	txs, err := s.eventTransactions(ctx, eventID)
	if err != nil {
		return domain.Amount{}, err
	}
	if mode == domain.BalanceNet {
		return settlement.KittyNetBalance(eventID, s.kittyID, txs)
	}
	return settlement.KittyBalance(eventID, s.kittyID, txs)
}

func (s *Service) ParticipantCount(ctx context.Context, eventID int) (count int, err error) {
	defer func() { s.observer.ObserveSettlement("participant_count", err) }()

	txs, err := s.eventTransactions(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return settlement.ParticipantCount(eventID, s.kittyID, txs)
}

func (s *Service) NetBalance(ctx context.Context, eventID, giverID, receiverID int) (amount domain.Amount, err error) {
	defer func() { s.observer.ObserveSettlement("net_balance", err) }()

	if giverID <= 0 || receiverID <= 0 {
		return domain.Amount{}, fmt.Errorf("%w: giver %d, receiver %d", domain.ErrInvalidArgument, giverID, receiverID)
	}
	for _, id := range []int{giverID, receiverID} {
		if err := s.checkUser(ctx, id); err != nil {
			return domain.Amount{}, err
		}
	}
	txs, err := s.eventTransactions(ctx, eventID)
	if err != nil {
		return domain.Amount{}, err
	}
	return settlement.NetBalance(eventID, giverID, receiverID, txs)
}

func (s *Service) Summary(ctx context.Context, eventID int) (summary settlement.Summary, err error) {
	defer func() { s.observer.ObserveSettlement("summary", err) }()

	txs, err := s.eventTransactions(ctx, eventID)
	if err != nil {
		return settlement.Summary{}, err
	}
	return settlement.Summarize(eventID, s.kittyID, txs)
}

// checkUser rejects ids that do not belong to a stored user.
func (s *Service) checkUser(ctx context.Context, id int) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: unknown user %d", domain.ErrInvalidArgument, id)
	}
	return nil
}

type summaryResult struct {
	summary settlement.Summary
	err     error
}

// Summaries computes the summary of every event on the worker pool. The first
// failure cancels the remaining computations.
func (s *Service) Summaries(ctx context.Context) ([]settlement.Summary, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]settlement.Summary, len(events))
	g, gctx := errgroup.WithContext(ctx)
	for i, event := range events {
		g.Go(func() error {
			done := make(chan summaryResult, 1)
			err := s.pool.AddTask(gctx, func() error {
				summary, err := s.summarize(gctx, event.ID)
				done <- summaryResult{summary: summary, err: err}
				return err
			})
			if err != nil {
				return err
			}

			select {
			case res := <-done:
				if res.err != nil {
					return res.err
				}
				summaries[i] = res.summary
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("can't compute summaries", zap.Error(err))
		return nil, err
	}
	return summaries, nil
}

func (s *Service) summarize(ctx context.Context, eventID int) (summary settlement.Summary, err error) {
	defer func() { s.observer.ObserveSettlement("summary", err) }()

	if err := ctx.Err(); err != nil {
		return settlement.Summary{}, err
	}
	txs, err := s.txs.Find(ctx, domain.TransactionFilter{EventID: eventID})
	if err != nil {
		return settlement.Summary{}, err
	}
	return settlement.Summarize(eventID, s.kittyID, txs)
}
