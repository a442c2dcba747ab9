package settlementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

const (
	kitty  = 1
	bruno  = 2
	xavi   = 3
	luis   = 4
	warsaw = 10
	berlin = 20
)

func warsawLedger() []domain.Transaction {
	tx := func(giver, receiver int, amount float64) domain.Transaction {
		return domain.Transaction{GiverID: giver, ReceiverID: receiver, EventID: warsaw, Amount: amount}
	}
	return []domain.Transaction{
		tx(bruno, luis, 60),
		tx(bruno, xavi, 85),
		tx(xavi, kitty, 30),
		tx(xavi, kitty, 13),
		tx(luis, kitty, 75),
		tx(bruno, kitty, 75),
		tx(kitty, bruno, 38),
		tx(luis, bruno, 35),
		tx(bruno, luis, 70),
	}
}

type SettlementServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	txs      *MockTransactionFinder
	events   *MockEventFinder
	users    *MockUserFinder
	observer *MockObserver
	pool     *workerpool.WorkerPool
	service  *Service
}

func (s *SettlementServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txs = NewMockTransactionFinder(s.ctrl)
	s.events = NewMockEventFinder(s.ctrl)
	s.users = NewMockUserFinder(s.ctrl)
	s.observer = NewMockObserver(s.ctrl)
	s.observer.EXPECT().ObserveSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	s.pool = workerpool.NewWorkerPool(2)
	s.service = New(s.txs, s.events, s.users, s.pool, s.observer, kitty)
}

func (s *SettlementServiceSuite) TearDownTest() {
	s.pool.Close()
}

func (s *SettlementServiceSuite) expectWarsaw() {
	s.events.EXPECT().FindByID(gomock.Any(), warsaw).Return(&domain.Event{ID: warsaw}, nil)
	s.txs.EXPECT().Find(gomock.Any(), domain.TransactionFilter{EventID: warsaw}).Return(warsawLedger(), nil)
}

func (s *SettlementServiceSuite) TestKittyBalance_Gross() {
	s.expectWarsaw()
	amount, err := s.service.KittyBalance(context.Background(), warsaw, domain.BalanceGross)
	s.Require().NoError(err)
	s.Equal(domain.Amount{Value: 193, Found: true}, amount)
}

func (s *SettlementServiceSuite) TestKittyBalance_Net() {
	s.expectWarsaw()
	amount, err := s.service.KittyBalance(context.Background(), warsaw, domain.BalanceNet)
	s.Require().NoError(err)
	s.Equal(domain.Amount{Value: 155, Found: true}, amount)
}

func (s *SettlementServiceSuite) TestKittyBalance_UnknownEvent() {
	s.events.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
	_, err := s.service.KittyBalance(context.Background(), 99, domain.BalanceGross)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SettlementServiceSuite) TestKittyBalance_InvalidEvent() {
	_, err := s.service.KittyBalance(context.Background(), 0, domain.BalanceGross)
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *SettlementServiceSuite) TestKittyBalance_StorageError() {
	s.events.EXPECT().FindByID(gomock.Any(), warsaw).Return(&domain.Event{ID: warsaw}, nil)
	s.txs.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorage)

	amount, err := s.service.KittyBalance(context.Background(), warsaw, domain.BalanceGross)
	s.ErrorIs(err, domain.ErrStorage)
	s.Equal(domain.Amount{}, amount)
}

func (s *SettlementServiceSuite) TestParticipantCount() {
	s.expectWarsaw()
	count, err := s.service.ParticipantCount(context.Background(), warsaw)
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *SettlementServiceSuite) expectUsers(ids ...int) {
	for _, id := range ids {
		s.users.EXPECT().FindByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)
	}
}

func (s *SettlementServiceSuite) TestNetBalance() {
	s.expectUsers(bruno, luis)
	s.expectWarsaw()
	amount, err := s.service.NetBalance(context.Background(), warsaw, bruno, luis)
	s.Require().NoError(err)
	s.Equal(domain.Amount{Value: 95, Found: true}, amount)
}

func (s *SettlementServiceSuite) TestNetBalance_InvalidUsers() {
	_, err := s.service.NetBalance(context.Background(), warsaw, 0, luis)
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *SettlementServiceSuite) TestNetBalance_UnknownUser() {
	s.expectUsers(bruno)
	s.users.EXPECT().FindByID(gomock.Any(), 9999).Return(nil, nil)

	amount, err := s.service.NetBalance(context.Background(), warsaw, bruno, 9999)
	s.ErrorIs(err, domain.ErrInvalidArgument)
	s.Equal(domain.Amount{}, amount)
}

func (s *SettlementServiceSuite) TestNetBalance_UnknownGiverSkipsLedger() {
	s.users.EXPECT().FindByID(gomock.Any(), 9999).Return(nil, nil)

	_, err := s.service.NetBalance(context.Background(), warsaw, 9999, bruno)
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *SettlementServiceSuite) TestNetBalance_UserStorageError() {
	s.users.EXPECT().FindByID(gomock.Any(), bruno).Return(nil, domain.ErrStorage)

	_, err := s.service.NetBalance(context.Background(), warsaw, bruno, luis)
	s.ErrorIs(err, domain.ErrStorage)
	s.NotErrorIs(err, domain.ErrInvalidArgument)
}

func (s *SettlementServiceSuite) TestSummary() {
	s.expectWarsaw()
	summary, err := s.service.Summary(context.Background(), warsaw)
	s.Require().NoError(err)
	s.Equal(warsaw, summary.EventID)
	s.Equal(193.0, summary.KittyBalance.Value)
	s.Equal(155.0, summary.KittyNetBalance.Value)
	s.Equal(3, summary.ParticipantCount)
	s.Equal(9, summary.TransactionCount)
}

func (s *SettlementServiceSuite) TestSummaries() {
	s.events.EXPECT().List(gomock.Any()).Return([]domain.Event{{ID: warsaw}, {ID: berlin}}, nil)
	s.txs.EXPECT().Find(gomock.Any(), domain.TransactionFilter{EventID: warsaw}).Return(warsawLedger(), nil)
	s.txs.EXPECT().Find(gomock.Any(), domain.TransactionFilter{EventID: berlin}).Return(nil, nil)

	summaries, err := s.service.Summaries(context.Background())
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(warsaw, summaries[0].EventID)
	s.Equal(193.0, summaries[0].KittyBalance.Value)
	s.Equal(berlin, summaries[1].EventID)
	s.False(summaries[1].KittyBalance.Found)
	s.Equal(0, summaries[1].ParticipantCount)
}

func (s *SettlementServiceSuite) TestSummaries_StorageError() {
	s.events.EXPECT().List(gomock.Any()).Return([]domain.Event{{ID: warsaw}, {ID: berlin}}, nil)
	s.txs.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorage).MinTimes(1).MaxTimes(2)

	summaries, err := s.service.Summaries(context.Background())
	s.ErrorIs(err, domain.ErrStorage)
	s.Nil(summaries)
}

func (s *SettlementServiceSuite) TestSummaries_ListError() {
	s.events.EXPECT().List(gomock.Any()).Return(nil, domain.ErrStorage)

	_, err := s.service.Summaries(context.Background())
	s.ErrorIs(err, domain.ErrStorage)
}

func TestSettlementServiceSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceSuite))
}

func TestSummaries_ClosedPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := NewMockEventFinder(ctrl)
	observer := NewMockObserver(ctrl)
	pool := workerpool.NewWorkerPool(1)
	pool.Close()

	events.EXPECT().List(gomock.Any()).Return([]domain.Event{{ID: warsaw}}, nil)
	service := New(NewMockTransactionFinder(ctrl), events, NewMockUserFinder(ctrl), pool, observer, kitty)

	_, err := service.Summaries(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, workerpool.ErrClosed))
}

func TestKittyID(t *testing.T) {
	service := New(nil, nil, nil, nil, nil, 7)
	assert.Equal(t, 7, service.KittyID())
}
