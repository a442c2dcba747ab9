package eventrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const eventColumns = "id, name, start_date, end_date, admin_id, place, description, finished, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(&event.ID, &event.Name, &event.StartDate, &event.EndDate, &event.AdminID,
		&event.Place, &event.Description, &event.Finished, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query := `
		INSERT INTO events (name, start_date, end_date, admin_id, place, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, finished, created_at
	`
	err := r.db.QueryRow(ctx, query, event.Name, event.StartDate, event.EndDate, event.AdminID,
		event.Place, event.Description).Scan(&event.ID, &event.Finished, &event.CreatedAt)
	if err != nil {
		zap.L().Error("can't save event", zap.Error(err))
		return nil, pg.StorageError("create event", err)
	}
	return event, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Event, error) {
	event, err := scanEvent(r.db.QueryRow(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find event", zap.Error(err))
		return nil, pg.StorageError("find event", err)
	}
	return event, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, "SELECT "+eventColumns+" FROM events ORDER BY start_date DESC, id")
	if err != nil {
		zap.L().Error("can't list events", zap.Error(err))
		return nil, pg.StorageError("list events", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, pg.StorageError("scan event", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate events", zap.Error(err))
		return nil, pg.StorageError("iterate events", err)
	}
	return events, nil
}

// Finish marks the event finished. It reports false when no such event exists.
func (r *Repository) Finish(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE events SET finished = TRUE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't finish event", zap.Error(err))
		return false, pg.StorageError("finish event", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete event", zap.Error(err))
		return false, pg.StorageError("delete event", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CountByAdmin(ctx context.Context, adminID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM events WHERE admin_id = $1", adminID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count events", zap.Error(err))
		return 0, pg.StorageError("count events", err)
	}
	return count, nil
}
