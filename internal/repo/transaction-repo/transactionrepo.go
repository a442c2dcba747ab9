package transactionrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = "id, giver_id, receiver_id, event_id, amount, transaction_date, place, description"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.GiverID, &t.ReceiverID, &t.EventID, &t.Amount, &t.Date, &t.Place, &t.Description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// buildWhere turns f into a WHERE clause with positional parameters.
// Values never enter the SQL text.
func buildWhere(f domain.TransactionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, value int) {
		args = append(args, value)
		conds = append(conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}
	if f.EventID > 0 {
		add("event_id = ?", f.EventID)
	}
	if f.UserID > 0 {
		add("(giver_id = ? OR receiver_id = ?)", f.UserID)
	}
	if f.GiverID > 0 {
		add("giver_id = ?", f.GiverID)
	}
	if f.ReceiverID > 0 {
		add("receiver_id = ?", f.ReceiverID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Create stores t after locking its event row. Finished events take no new
// transactions.
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (giver_id, receiver_id, event_id, amount, transaction_date, place, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var finished bool
		err := r.db.QueryRow(ctx, "SELECT finished FROM events WHERE id = $1 FOR UPDATE", t.EventID).Scan(&finished)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("event %d: %w", t.EventID, domain.ErrNotFound)
		}
		if err != nil {
			zap.L().Error("can't lock event", zap.Error(err))
			return pg.StorageError("lock event", err)
		}
		if finished {
			return domain.ErrEventFinished
		}

		err = r.db.QueryRow(ctx, query, t.GiverID, t.ReceiverID, t.EventID, t.Amount, t.Date,
			t.Place, t.Description).Scan(&t.ID)
		if err != nil {
			zap.L().Error("can't save transaction", zap.Error(err))
			return pg.StorageError("create transaction", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, pg.StorageError("find transaction", err)
	}
	return t, nil
}

func (r *Repository) Find(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := buildWhere(f)
	rows, err := r.db.Query(ctx, "SELECT "+transactionColumns+" FROM transactions"+where+" ORDER BY transaction_date, id", args...)
	if err != nil {
		zap.L().Error("can't find transactions", zap.Error(err))
		return nil, pg.StorageError("find transactions", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, pg.StorageError("scan transaction", err)
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transactions", zap.Error(err))
		return nil, pg.StorageError("iterate transactions", err)
	}
	return txs, nil
}

func (r *Repository) Count(ctx context.Context, f domain.TransactionFilter) (int, error) {
	where, args := buildWhere(f)
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&count); err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return 0, pg.StorageError("count transactions", err)
	}
	return count, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
		return false, pg.StorageError("delete transaction", err)
	}
	return tag.RowsAffected() > 0, nil
}
