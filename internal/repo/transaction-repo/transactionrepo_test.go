package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var transactionRowColumns = []string{"id", "giver_id", "receiver_id", "event_id", "amount", "transaction_date", "place", "description"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThrough(mockTxManager *pg.MockTXManager) {
	mockTxManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.TransactionFilter
		where  string
		args   []any
	}{
		{
			name:   "Empty filter",
			filter: domain.TransactionFilter{},
			where:  "",
		},
		{
			name:   "Event only",
			filter: domain.TransactionFilter{EventID: 10},
			where:  " WHERE event_id = $1",
			args:   []any{10},
		},
		{
			name:   "User on either side",
			filter: domain.TransactionFilter{EventID: 10, UserID: 2},
			where:  " WHERE event_id = $1 AND (giver_id = $2 OR receiver_id = $2)",
			args:   []any{10, 2},
		},
		{
			name:   "Directed pair",
			filter: domain.TransactionFilter{EventID: 10, GiverID: 2, ReceiverID: 3},
			where:  " WHERE event_id = $1 AND giver_id = $2 AND receiver_id = $3",
			args:   []any{10, 2, 3},
		},
		{
			name:   "Negative ids are ignored",
			filter: domain.TransactionFilter{EventID: -1, ReceiverID: 1},
			where:  " WHERE receiver_id = $1",
			args:   []any{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildWhere(tt.filter)
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	lock := regexp.QuoteMeta("SELECT finished FROM events WHERE id = $1 FOR UPDATE")
	insert := regexp.QuoteMeta("INSERT INTO transactions (giver_id, receiver_id, event_id, amount, transaction_date, place, description)")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name: "Create transaction successfully",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lock).WithArgs(10).
					WillReturnRows(pgxmock.NewRows([]string{"finished"}).AddRow(false))
				mock.ExpectQuery(insert).
					WithArgs(2, 1, 10, 30.0, day, "Warsaw", "Supermarket").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
			},
		},
		{
			name: "Event finished",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lock).WithArgs(10).
					WillReturnRows(pgxmock.NewRows([]string{"finished"}).AddRow(true))
			},
			expectErr: domain.ErrEventFinished,
		},
		{
			name: "Event missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lock).WithArgs(10).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Insert fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lock).WithArgs(10).
					WillReturnRows(pgxmock.NewRows([]string{"finished"}).AddRow(false))
				mock.ExpectQuery(insert).
					WithArgs(2, 1, 10, 30.0, day, "Warsaw", "Supermarket").
					WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, mockTxManager := NewMock(t)
			passThrough(mockTxManager)
			tt.mockSetup(mock)

			tx := &domain.Transaction{GiverID: 2, ReceiverID: 1, EventID: 10, Amount: 30, Date: day,
				Place: "Warsaw", Description: "Supermarket"}
			result, err := repo.Create(context.Background(), tx)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + transactionColumns + " FROM transactions WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(5).
		WillReturnRows(pgxmock.NewRows(transactionRowColumns).AddRow(5, 2, 1, 10, 30.0, day, "Warsaw", ""))
	mock.ExpectQuery(query).WithArgs(6).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))

	tx, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &domain.Transaction{ID: 5, GiverID: 2, ReceiverID: 1, EventID: 10, Amount: 30, Date: day, Place: "Warsaw"}, tx)

	tx, err = repo.FindByID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, tx)

	_, err = repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Find(t *testing.T) {
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    domain.TransactionFilter
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expectLen int
	}{
		{
			name:   "All transactions",
			filter: domain.TransactionFilter{},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + transactionColumns + " FROM transactions ORDER BY transaction_date, id")).
					WillReturnRows(pgxmock.NewRows(transactionRowColumns).
						AddRow(1, 2, 1, 10, 30.0, day, "", "").
						AddRow(2, 3, 1, 20, 10.0, day, "", ""))
			},
			expectLen: 2,
		},
		{
			name:   "Event and user",
			filter: domain.TransactionFilter{EventID: 10, UserID: 2},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE event_id = $1 AND (giver_id = $2 OR receiver_id = $2)")).
					WithArgs(10, 2).
					WillReturnRows(pgxmock.NewRows(transactionRowColumns).AddRow(1, 2, 1, 10, 30.0, day, "", ""))
			},
			expectLen: 1,
		},
		{
			name:   "Database error",
			filter: domain.TransactionFilter{EventID: 10},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE event_id = $1")).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			txs, err := repo.Find(context.Background(), tt.filter)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStorage)
			} else {
				assert.NoError(t, err)
				assert.Len(t, txs, tt.expectLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Count(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE (giver_id = $1 OR receiver_id = $1)")).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE event_id = $1")).
		WithArgs(10).
		WillReturnError(errors.New("database error"))

	count, err := repo.Count(context.Background(), domain.TransactionFilter{UserID: 2})
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = repo.Count(context.Background(), domain.TransactionFilter{EventID: 10})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1")

	mock.ExpectExec(query).WithArgs(5).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(query).WithArgs(6).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ok, err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 6)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
