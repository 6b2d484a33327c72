package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteModel struct {
	ID   uint   `gorm:"primaryKey"`
	Body string `gorm:"size:255;not null"`
}

func (noteModel) TableName() string {
	return "notes"
}

func setupTxTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&noteModel{}))
	return gdb
}

func countNotes(t *testing.T, gdb *gorm.DB) int64 {
	var n int64
	require.NoError(t, gdb.Model(&noteModel{}).Count(&n).Error)
	return n
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	gdb := setupTxTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, gdb)
		return tx.Create(&noteModel{Body: "first"}).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countNotes(t, gdb))
}

func TestTransactionManager_RollsBackEveryWriteOnError(t *testing.T) {
	gdb := setupTxTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, gdb)
		if err := tx.Create(&noteModel{Body: "doomed"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("late failure")
	})
	require.Error(t, err)
	assert.Equal(t, int64(0), countNotes(t, gdb))
}

func TestGetTxFromContext_FallsBackOutsideTransaction(t *testing.T) {
	gdb := setupTxTestDB(t)

	tx := GetTxFromContext(context.Background(), gdb)
	require.NoError(t, tx.Create(&noteModel{Body: "direct"}).Error)
	assert.Equal(t, int64(1), countNotes(t, gdb))
}
