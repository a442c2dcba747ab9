package transactionservice

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserFinder) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	users := NewMockUserFinder(ctrl)
	return New(repo, users), repo, users
}

func TestAdd(t *testing.T) {
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	valid := domain.Transaction{GiverID: 2, ReceiverID: 1, EventID: 10, Amount: 30, Date: day}

	tests := []struct {
		name        string
		tx          func() domain.Transaction
		prepareMock func(repo *MockRepo, users *MockUserFinder)
		expectedErr error
	}{
		{
			name: "Added",
			tx:   func() domain.Transaction { return valid },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, IsKitty: true}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
					t.ID = 5
					return t, nil
				})
			},
		},
		{
			name:        "Same giver and receiver",
			tx:          func() domain.Transaction { tx := valid; tx.ReceiverID = 2; return tx },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:        "Zero amount",
			tx:          func() domain.Transaction { tx := valid; tx.Amount = 0; return tx },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:        "NaN amount",
			tx:          func() domain.Transaction { tx := valid; tx.Amount = math.NaN(); return tx },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:        "Missing event",
			tx:          func() domain.Transaction { tx := valid; tx.EventID = 0; return tx },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:        "Missing date",
			tx:          func() domain.Transaction { tx := valid; tx.Date = time.Time{}; return tx },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name: "Unknown receiver",
			tx:   func() domain.Transaction { return valid },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				users.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Finished event",
			tx:   func() domain.Transaction { return valid },
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 9}, nil).Times(2)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEventFinished)
			},
			expectedErr: domain.ErrEventFinished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, users := NewMock(t)
			tt.prepareMock(repo, users)

			tx := tt.tx()
			created, err := service.Add(context.Background(), &tx)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, created.ID)
		})
	}
}

func TestGetAndDelete(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{ID: 5}, nil)
	repo.EXPECT().FindByID(gomock.Any(), 6).Return(nil, nil)
	repo.EXPECT().Delete(gomock.Any(), 5).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), 6).Return(false, nil)

	tx, err := service.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, tx.ID)

	_, err = service.Get(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, service.Delete(context.Background(), 5))
	assert.ErrorIs(t, service.Delete(context.Background(), 6), domain.ErrNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), 0), domain.ErrInvalidArgument)
}

func TestList(t *testing.T) {
	service, repo, _ := NewMock(t)
	f := domain.TransactionFilter{EventID: 10, UserID: 2}
	repo.EXPECT().Find(gomock.Any(), f).Return([]domain.Transaction{{ID: 1}, {ID: 2}}, nil)

	txs, err := service.List(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		eventID     int
		prepareMock func(repo *MockRepo, users *MockUserFinder)
		expected    int
		expectedErr error
	}{
		{
			name:        "Both absent is zero without a query",
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {},
			expected:    0,
		},
		{
			name:    "User in event",
			userID:  2,
			eventID: 10,
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				repo.EXPECT().Count(gomock.Any(), domain.TransactionFilter{UserID: 2, EventID: 10}).Return(4, nil)
			},
			expected: 4,
		},
		{
			name:    "Event only skips the user lookup",
			eventID: 10,
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				repo.EXPECT().Count(gomock.Any(), domain.TransactionFilter{EventID: 10}).Return(9, nil)
			},
			expected: 9,
		},
		{
			name:    "Unknown user is rejected",
			userID:  9999,
			eventID: 10,
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), 9999).Return(nil, nil)
			},
			expectedErr: domain.ErrInvalidArgument,
		},
		{
			name:   "User lookup failure propagates",
			userID: 2,
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(nil, domain.ErrStorage)
			},
			expectedErr: domain.ErrStorage,
		},
		{
			name:    "Storage error is not a zero",
			eventID: 10,
			prepareMock: func(repo *MockRepo, users *MockUserFinder) {
				repo.EXPECT().Count(gomock.Any(), domain.TransactionFilter{EventID: 10}).Return(0, domain.ErrStorage)
			},
			expectedErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, users := NewMock(t)
			tt.prepareMock(repo, users)

			count, err := service.Count(context.Background(), tt.userID, tt.eventID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, count)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}
