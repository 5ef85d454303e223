package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/recipeshare/server/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed only when the handler reports a success
// status; any 4xx/5xx response rolls the whole request back, so
// multi-table aggregate writes stay all-or-nothing.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := setTxToContext(r.Context(), tx)
			ctx = WithAfterCommit(ctx)
			r = r.WithContext(ctx)

			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				return
			}

			runAfterCommit(ctx)
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// hooksContextKey is an unexported type for the after-commit hook list
type hooksContextKey struct{}

var hooksKey = hooksContextKey{}

// afterCommitHooks collects work that must not happen unless the
// request transaction commits.
type afterCommitHooks struct {
	funcs []func()
}

// WithAfterCommit returns a context whose RunAfterCommit callbacks are
// held until runAfterCommit fires. TxMiddleware installs it for every
// wrapped request.
func WithAfterCommit(ctx context.Context) context.Context {
	return context.WithValue(ctx, hooksKey, &afterCommitHooks{})
}

// RunAfterCommit defers fn until the surrounding request transaction
// commits. On rollback the callback is dropped. Outside a transaction
// fn runs immediately.
func RunAfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey).(*afterCommitHooks); ok {
		hooks.funcs = append(hooks.funcs, fn)
		return
	}
	fn()
}

// runAfterCommit fires the callbacks registered on the context.
func runAfterCommit(ctx context.Context) {
	hooks, ok := ctx.Value(hooksKey).(*afterCommitHooks)
	if !ok {
		return
	}
	for _, fn := range hooks.funcs {
		fn()
	}
}
