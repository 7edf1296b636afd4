// Package storagetest содержит общие хелперы для тестов репозиториев
package storagetest

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

// Recorder запоминает SQL, отправленный репозиторием, и передает его в sqlmock
type Recorder struct {
	exec dbmetrics.DBExecutor

	mu      sync.Mutex
	queries []string
}

func (r *Recorder) record(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
}

// Queries возвращает выполненные запросы в порядке вызова
func (r *Recorder) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

// LastQuery возвращает последний выполненный запрос
func (r *Recorder) LastQuery() string {
	q := r.Queries()
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

func (r *Recorder) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.record(query)
	return r.exec.ExecContext(ctx, query, args...)
}

func (r *Recorder) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	r.record(query)
	return r.exec.QueryContext(ctx, query, args...)
}

func (r *Recorder) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	r.record(query)
	return r.exec.QueryRowContext(ctx, query, args...)
}

type recordingTx struct {
	rec *Recorder
	tx  *sql.Tx
}

func (t *recordingTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	t.rec.record(query)
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *recordingTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	t.rec.record(query)
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *recordingTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	t.rec.record(query)
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *recordingTx) Commit() error   { return t.tx.Commit() }
func (t *recordingTx) Rollback() error { return t.tx.Rollback() }

// NewDB создает Recorder поверх sqlmock
// Запросы сопоставляются как регулярные выражения
func NewDB(t *testing.T) (*Recorder, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Recorder{exec: db}, mock
}

// InTx открывает транзакцию sqlmock и кладет её в контекст так же, как txmanager
// Запросы внутри транзакции пишутся в тот же Recorder
func InTx(t *testing.T, ctx context.Context, rec *Recorder, mock sqlmock.Sqlmock) context.Context {
	t.Helper()

	db, ok := rec.exec.(*sql.DB)
	require.True(t, ok, "InTx expects a Recorder created by NewDB")

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	return dbmetrics.WithTx(ctx, &recordingTx{rec: rec, tx: tx})
}
