package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/middlewares"
)

// ext returns the transaction bound to the request context when one is
// present, otherwise the shared pool. Aggregate-write routes run under
// TxMiddleware, so every repository call inside them joins the same
// transaction.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
