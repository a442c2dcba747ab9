package userservice

import (
	"context"
	"testing"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo        *MockRepo
	events      *MockEventCounter
	txs         *MockTransactionCounter
	credentials *MockCredentials
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:        NewMockRepo(ctrl),
		events:      NewMockEventCounter(ctrl),
		txs:         NewMockTransactionCounter(ctrl),
		credentials: NewMockCredentials(ctrl),
	}
	return New(m.repo, m.events, m.txs, m.credentials), m
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          int
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name: "Found",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2, Nickname: "bruno"}, nil)
			},
		},
		{
			name:        "Non-positive id",
			id:          0,
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name: "Missing",
			id:   7,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 7).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Storage error",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(nil, domain.ErrStorage)
			},
			expectedErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Get(ctx, tt.id)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, user.ID)
		})
	}
}

func TestList_HidesKitty(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: 2, Nickname: "bruno"},
		{ID: 1, Nickname: "kitty", IsKitty: true},
		{ID: 3, Nickname: "xavi"},
	}, nil)

	users, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.False(t, u.IsKitty)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	bruno := &domain.User{ID: 2, Nickname: "bruno"}

	tests := []struct {
		name        string
		id          int
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name: "Deleted",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(nil)
				m.events.EXPECT().CountByAdmin(ctx, 2).Return(0, nil)
				m.txs.EXPECT().Count(ctx, domain.TransactionFilter{UserID: 2}).Return(0, nil)
				m.repo.EXPECT().Delete(ctx, 2).Return(true, nil)
			},
		},
		{
			name: "Kitty is protected",
			id:   1,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, IsKitty: true}, nil)
			},
			expectedErr: domain.ErrKittyProtected,
		},
		{
			name: "Wrong password",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(domain.ErrInvalidCredentials)
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
		{
			name: "Administers events",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(nil)
				m.events.EXPECT().CountByAdmin(ctx, 2).Return(1, nil)
			},
			expectedErr: domain.ErrHasEvents,
		},
		{
			name: "Has transactions",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(nil)
				m.events.EXPECT().CountByAdmin(ctx, 2).Return(0, nil)
				m.txs.EXPECT().Count(ctx, domain.TransactionFilter{UserID: 2}).Return(4, nil)
			},
			expectedErr: domain.ErrHasTransactions,
		},
		{
			name: "Storage error while counting",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(nil)
				m.events.EXPECT().CountByAdmin(ctx, 2).Return(0, domain.ErrStorage)
			},
			expectedErr: domain.ErrStorage,
		},
		{
			name: "Vanished before delete",
			id:   2,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByID(ctx, 2).Return(bruno, nil)
				m.credentials.EXPECT().Reauthenticate(ctx, 2, "secret").Return(nil)
				m.events.EXPECT().CountByAdmin(ctx, 2).Return(0, nil)
				m.txs.EXPECT().Count(ctx, domain.TransactionFilter{UserID: 2}).Return(0, nil)
				m.repo.EXPECT().Delete(ctx, 2).Return(false, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Delete(ctx, tt.id, "secret")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
