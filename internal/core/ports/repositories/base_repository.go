package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management.
//
// Begin returns a context carrying the open transaction; every repository
// call made with that context joins it. Commit and Rollback act on the
// transaction found in the context.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction carried by ctx
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction carried by ctx
	Rollback(ctx context.Context) error
}
