// Package repository implements the persistence contracts of every domain
// package on top of gorm. All entity kinds share one pagination, uniqueness,
// and not-found policy through the generic repository.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketd/internal/shared/constants"
	"ticketd/internal/shared/db"
	apperrors "ticketd/internal/shared/errors"
	"ticketd/internal/shared/query"
)

// Model is the capability every persisted model exposes to the generic
// repository.
type Model interface {
	GetID() uint
}

// Generic provides the shared CRUD policy for one entity kind. Uniqueness and
// existence checks are read-then-act sequences without cross-step isolation;
// concurrent writers to the same key can race, and the last write wins. The
// store's per-row atomicity bounds the damage to duplicate-unique-value or
// lost-update outcomes, which this domain accepts.
type Generic[M Model] struct {
	db   *gorm.DB
	kind string
}

// NewGeneric creates a repository for one entity kind. The kind is the
// human-readable entity name used in error messages, e.g. "User".
func NewGeneric[M Model](gdb *gorm.DB, kind string) *Generic[M] {
	return &Generic[M]{db: gdb, kind: kind}
}

// FindByID loads one record, preloading the named associations.
func (r *Generic[M]) FindByID(ctx context.Context, id uint, preloads ...string) (*M, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	var model M
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(r.kind + " not found")
		}
		return nil, fmt.Errorf("failed to find %s: %w", r.kind, err)
	}

	return &model, nil
}

// FindAll returns one fixed-size page of records. An empty collection is a
// not-found condition regardless of the requested page; a page beyond the end
// of a non-empty collection merely comes back empty.
func (r *Generic[M]) FindAll(ctx context.Context, page int, orderBy string, preloads ...string) ([]M, query.PageMeta, error) {
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(new(M)).Count(&total).Error; err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("failed to count %s records: %w", r.kind, err)
	}
	if total == 0 {
		return nil, query.PageMeta{}, apperrors.NewNotFoundError("No " + r.kind + " records found")
	}

	listTx := tx
	for _, preload := range preloads {
		listTx = listTx.Preload(preload)
	}
	if orderBy != "" {
		listTx = listTx.Order(orderBy)
	}

	var records []M
	if err := listTx.
		Offset((page - 1) * constants.PageSize).
		Limit(constants.PageSize).
		Find(&records).Error; err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("failed to list %s records: %w", r.kind, err)
	}

	return records, query.NewPageMeta(total, page, constants.PageSize), nil
}

// Create inserts the record after an optional uniqueness probe. When any
// record matches the unique criteria the insert is refused with a conflict.
func (r *Generic[M]) Create(ctx context.Context, model *M, uniqueCheck map[string]any) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if len(uniqueCheck) > 0 {
		var existing M
		err := tx.Where(uniqueCheck).First(&existing).Error
		switch {
		case err == nil:
			return apperrors.NewConflictError(r.kind + " already exists")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to check %s uniqueness: %w", r.kind, err)
		}
	}

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(r.kind + " already exists")
		}
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}

	return nil
}

// Update verifies the target exists, then applies the non-zero fields of
// changes. The uniqueness probe tolerates the target's own row, so an update
// that reuses its own unique value goes through.
func (r *Generic[M]) Update(ctx context.Context, id uint, changes *M, uniqueCheck map[string]any) (*M, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if len(uniqueCheck) > 0 {
		var existing M
		err := tx.Where(uniqueCheck).First(&existing).Error
		switch {
		case err == nil:
			if existing.GetID() != id {
				return nil, apperrors.NewConflictError(r.kind + " already exists")
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("failed to check %s uniqueness: %w", r.kind, err)
		}
	}

	if err := tx.Model(new(M)).Where("id = ?", id).Updates(changes).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(r.kind + " already exists")
		}
		return nil, fmt.Errorf("failed to update %s: %w", r.kind, err)
	}

	return r.FindByID(ctx, id)
}

// DeleteByID verifies the target exists, then deletes it.
func (r *Generic[M]) DeleteByID(ctx context.Context, id uint) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(new(M), id).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, err)
	}

	return nil
}
