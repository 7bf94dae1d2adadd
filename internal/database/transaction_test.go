package database

import (
	"context"
	"errors"
	"testing"
)

func setupItemsTable(t *testing.T, db Database) {
	t.Helper()
	if err := db.Session(context.Background()).Exec(
		"CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
}

func countItems(t *testing.T, db Database) int64 {
	t.Helper()
	var count int64
	if err := db.Session(context.Background()).
		Raw("SELECT COUNT(*) FROM test_items").Scan(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestTransaction_Commit(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	setupItemsTable(t, db)

	txn, err := Begin(ctx, db)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if err := txn.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := txn.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got := countItems(t, db); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}

	// Second commit is a no-op.
	if err := txn.Commit(); err != nil {
		t.Errorf("second Commit should not error: %v", err)
	}
}

func TestTransaction_Rollback(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	setupItemsTable(t, db)

	txn, err := Begin(ctx, db)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if err := txn.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := txn.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	if got := countItems(t, db); got != 0 {
		t.Errorf("expected count 0 after rollback, got %d", got)
	}

	if err := txn.Rollback(); err != nil {
		t.Errorf("second Rollback should not error: %v", err)
	}
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	setupItemsTable(t, db)

	err := WithTransaction(ctx, db, func(tx *Transaction) error {
		return tx.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error
	})
	if err != nil {
		t.Fatalf("WithTransaction: %v", err)
	}

	if got := countItems(t, db); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	setupItemsTable(t, db)

	boom := errors.New("boom")
	err := WithTransaction(ctx, db, func(tx *Transaction) error {
		if err := tx.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := countItems(t, db); got != 0 {
		t.Errorf("expected count 0 after rollback, got %d", got)
	}
}
