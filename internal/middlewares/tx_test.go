package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestTxMiddlewareCommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, GetTxFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/recipes/add-recipe", nil)
	rec := httptest.NewRecorder()

	TxMiddleware(sqlxDB)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddlewareRollsBackOnErrorStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/recipes/add-recipe", nil)
	rec := httptest.NewRecorder()

	TxMiddleware(sqlxDB)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddlewareRunsHooksAfterCommit(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	committedBeforeHook := false
	hookRan := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RunAfterCommit(r.Context(), func() {
			hookRan = true
			committedBeforeHook = mock.ExpectationsWereMet() == nil
		})
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/recipes/edit-recipe", nil)
	rec := httptest.NewRecorder()

	TxMiddleware(sqlxDB)(handler).ServeHTTP(rec, req)

	assert.True(t, hookRan)
	assert.True(t, committedBeforeHook)
}

func TestTxMiddlewareDropsHooksOnRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	hookRan := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RunAfterCommit(r.Context(), func() {
			hookRan = true
		})
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPut, "/recipes/edit-recipe", nil)
	rec := httptest.NewRecorder()

	TxMiddleware(sqlxDB)(handler).ServeHTTP(rec, req)

	assert.False(t, hookRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAfterCommitWithoutTransaction(t *testing.T) {
	ran := false
	RunAfterCommit(context.Background(), func() {
		ran = true
	})
	assert.True(t, ran)
}

func TestTxMiddlewareBeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(assert.AnError)

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a transaction")
	})

	req := httptest.NewRequest(http.MethodPost, "/recipes/add-recipe", nil)
	rec := httptest.NewRecorder()

	TxMiddleware(sqlxDB)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
