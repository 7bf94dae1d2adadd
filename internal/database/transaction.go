package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Transaction wraps a GORM transaction with commit/rollback semantics.
// It implements Conn, so stores constructed over a Transaction execute
// inside it.
type Transaction struct {
	tx       *gorm.DB
	finished bool
}

// Begin starts a new database transaction.
func Begin(ctx context.Context, db Database) (*Transaction, error) {
	tx := db.Session(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &Transaction{tx: tx}, nil
}

// Session returns a GORM session bound to the open transaction.
func (t *Transaction) Session(ctx context.Context) *gorm.DB {
	return t.tx.WithContext(ctx)
}

// Commit commits the transaction. Calling it again is a no-op.
func (t *Transaction) Commit() error {
	if t.finished {
		return nil
	}
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	t.finished = true
	return nil
}

// Rollback rolls back the transaction if not already finished.
func (t *Transaction) Rollback() error {
	if t.finished {
		return nil
	}
	if err := t.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	t.finished = true
	return nil
}

// WithTransaction executes fn within a transaction, committing on success
// or rolling back on error. fn receives the Transaction as a Conn so it
// can bind stores to it.
func WithTransaction(ctx context.Context, db Database, fn func(tx *Transaction) error) error {
	txn, err := Begin(ctx, db)
	if err != nil {
		return err
	}

	defer func() {
		if !txn.finished {
			_ = txn.Rollback()
		}
	}()

	if err := fn(txn); err != nil {
		return err
	}

	return txn.Commit()
}
