package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/license_portal/internal/apperrors"
	portsrepo "github.com/SscSPs/license_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txCtxKey struct{}

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.Pool
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok && tx != nil
}

// lockInTx appends FOR UPDATE to query when ctx carries a transaction, so the
// selected rows stay locked until commit or rollback.
func lockInTx(ctx context.Context, query string) string {
	if _, inTx := txFromContext(ctx); inTx {
		return query + " FOR UPDATE"
	}
	return query
}

// PgxTransactionManager opens transactions on the pool and hands them to
// repositories through the context.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// Begin starts a new database transaction
func (m *PgxTransactionManager) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := txFromContext(ctx); ok {
		return ctx, apperrors.NewAppError("transaction already in progress", nil)
	}
	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return ctx, apperrors.NewAppError("failed to begin transaction", err)
	}
	return context.WithValue(ctx, txCtxKey{}, tx), nil
}

// Commit commits a transaction
func (m *PgxTransactionManager) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return apperrors.NewAppError("no transaction to commit", nil)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (m *PgxTransactionManager) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return nil
	}
	// The caller's context may already be cancelled; the rollback must still reach the server.
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil &&
		!errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError("failed to rollback transaction", err)
	}
	return nil
}
