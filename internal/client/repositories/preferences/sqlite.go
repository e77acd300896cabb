package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

// SQLiteRepository implements Repository on the preferences table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository binds a repository to a *sql.DB or *sql.Tx.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete preference[%s]: %w", key, err)
	}
	return nil
}

// TxRepository is a SQLiteRepository that can also run read-modify-write
// updates of a single key inside a transaction.
type TxRepository struct {
	*SQLiteRepository
	db *sql.DB
}

// NewTxRepository returns a repository bound to db with Update support.
func NewTxRepository(db *sql.DB) *TxRepository {
	return &TxRepository{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

// Update reads key, passes the current value to fn and stores the result,
// all in one transaction, so concurrent counters cannot lose increments.
func (r *TxRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)

		current, err := repo.Get(ctx, key)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		if next == nil {
			return repo.Delete(ctx, key)
		}
		return repo.Set(ctx, key, next)
	})
}
