package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}
func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	lastOpts *sql.TxOptions
	beginErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.lastOpts = opts
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestDo_Commit(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.False(t, db.txs[0].rolledBack)
}

func TestDo_RollbackOnError(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	wantErr := errors.New("slot is full")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDo_BeginError(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("conn refused")})

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrTransaction)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	calls := 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return fmt.Errorf("insert reservation: %w", &pq.Error{Code: pqSerializationFailure})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
}

func TestDoSerializable_GivesUp(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	calls := 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: pqDeadlockDetected}
	})

	assert.Error(t, err)
	assert.Equal(t, maxSerializationRetries, calls)
}

func TestDoReadOnly(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	require.NoError(t, m.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil }))
	require.NotNil(t, db.lastOpts)
	assert.True(t, db.lastOpts.ReadOnly)
	assert.Equal(t, sql.LevelRepeatableRead, db.lastOpts.Isolation, "reads share one snapshot")
	assert.True(t, db.txs[0].committed)
}

func TestDo_DefaultIsolation(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	require.NoError(t, m.Do(context.Background(), func(ctx context.Context) error { return nil }))
	assert.Nil(t, db.lastOpts)
}
