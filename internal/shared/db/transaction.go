// Package db carries the gorm transaction through context so the multi-step
// ticket writes (resolve fields, create or update the ticket, adjust the
// field links) commit or roll back as one unit.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs use-case closures inside a database transaction.
// It satisfies the use-case layer's TransactionRunner interface.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction opens a transaction, stores it on the context passed to
// fn, and commits when fn returns nil. Any error rolls the whole transaction
// back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the transaction stored by RunInTransaction, or
// defaultDB when the caller runs outside one. Repositories route every write
// through this so they join an ambient transaction transparently.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
