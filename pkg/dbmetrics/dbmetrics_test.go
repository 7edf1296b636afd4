package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct{}

func (stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (stubTx) Commit() error                                                    { return nil }
func (stubTx) Rollback() error                                                  { return nil }

func TestGetExecutor(t *testing.T) {
	fallback := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, fallback, GetExecutor(ctx, fallback))

	tx := stubTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, fallback))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM time_slots"))
	assert.Equal(t, "insert", operation("  INSERT INTO customers"))
	assert.Equal(t, "update", operation("UPDATE\ncoupons SET"))
	assert.Equal(t, "other", operation("LOCK TABLE x"))
	assert.Equal(t, "other", operation(""))
}
