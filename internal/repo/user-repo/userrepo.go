package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const userColumns = "id, name, nickname, email, password_hash, password_salt, birthdate, is_kitty, created_at"

// uniqueViolation is the postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Nickname, &user.Email, &user.PasswordHash,
		&user.PasswordSalt, &user.Birthdate, &user.IsKitty, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE nickname = $1", nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by nickname", zap.Error(err))
		return nil, pg.StorageError("find user by nickname", err)
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, pg.StorageError("find user by id", err)
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY nickname")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, pg.StorageError("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, pg.StorageError("scan user", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate users", zap.Error(err))
		return nil, pg.StorageError("iterate users", err)
	}
	return users, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, nickname, email, password_hash, password_salt, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Nickname, user.Email, user.PasswordHash,
		user.PasswordSalt, user.Birthdate).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrNicknameTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, pg.StorageError("create user", err)
	}
	return user, nil
}

func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1 AND NOT is_kitty", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return false, pg.StorageError("delete user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// EnsureKitty returns the kitty user, creating it with nickname on first run.
func (repo *Repository) EnsureKitty(ctx context.Context, nickname string) (*domain.User, error) {
	query := `
		INSERT INTO users (name, nickname, is_kitty)
		VALUES ($1, $1, TRUE)
		ON CONFLICT (is_kitty) WHERE is_kitty DO UPDATE SET is_kitty = EXCLUDED.is_kitty
		RETURNING ` + userColumns
	kitty, err := scanUser(repo.db.QueryRow(ctx, query, nickname))
	if err != nil {
		zap.L().Error("can't ensure kitty", zap.Error(err))
		return nil, pg.StorageError("ensure kitty", err)
	}
	return kitty, nil
}
