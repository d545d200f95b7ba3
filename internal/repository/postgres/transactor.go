package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
)

// querier - общее подмножество *sqlx.DB и *sqlx.Tx, которым пользуются репозитории
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type txKey struct{}

// conn возвращает транзакцию из ctx, если она открыта, иначе пул соединений
func conn(ctx context.Context, db *sqlx.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

type transactor struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransactor(db *DB) repository.Transactor {
	return &transactor{
		db:     db.DB,
		logger: db.logger,
	}
}

// WithinTransaction runs fn in a single transaction. A call made while a
// transaction is already open in ctx joins it instead of opening a new one.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		t.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				t.logger.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(); err != nil {
			t.logger.Error("Failed to commit transaction", zap.Error(err))
			err = errors.ErrDatabaseError
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}
