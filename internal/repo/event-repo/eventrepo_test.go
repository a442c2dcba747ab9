package eventrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{"id", "name", "start_date", "end_date", "admin_id", "place", "description", "finished", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2016, 9, 4, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()
	insert := regexp.QuoteMeta(`
		INSERT INTO events (name, start_date, end_date, admin_id, place, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, finished, created_at
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create event successfully",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("Warsaw trip", start, end, 2, "Warsaw", "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "finished", "created_at"}).AddRow(10, false, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(insert).
					WithArgs("Warsaw trip", start, end, 2, "Warsaw", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			event := &domain.Event{Name: "Warsaw trip", StartDate: start, EndDate: end, AdminID: 2, Place: "Warsaw"}
			result, err := repo.Create(context.Background(), event)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStorage)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()
	query := regexp.QuoteMeta("SELECT " + eventColumns + " FROM events WHERE id = $1")

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Event
	}{
		{
			name: "Event found",
			id:   10,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10).
					WillReturnRows(pgxmock.NewRows(eventRowColumns).
						AddRow(10, "Warsaw trip", start, start, 2, "Warsaw", "", true, createdAt))
			},
			result: &domain.Event{
				ID: 10, Name: "Warsaw trip", StartDate: start, EndDate: start,
				AdminID: 2, Place: "Warsaw", Finished: true, CreatedAt: createdAt,
			},
		},
		{
			name: "Event not found",
			id:   11,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(11).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   12,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(12).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStorage)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventColumns + " FROM events ORDER BY start_date DESC, id")).
		WillReturnRows(pgxmock.NewRows(eventRowColumns).
			AddRow(20, "Berlin", day, day, 3, "", "", false, day).
			AddRow(10, "Warsaw", day, day, 2, "", "", true, day))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 20, events[0].ID)
	assert.True(t, events[1].Finished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FinishAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET finished = TRUE WHERE id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET finished = TRUE WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(11).
		WillReturnError(errors.New("database error"))

	ok, err := repo.Finish(context.Background(), 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Finish(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(context.Background(), 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByAdmin(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT COUNT(*) FROM events WHERE admin_id = $1")

	mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(query).WithArgs(4).WillReturnError(errors.New("database error"))

	count, err := repo.CountByAdmin(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = repo.CountByAdmin(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
