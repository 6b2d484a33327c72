// Package migrations applies the database schema.
package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/authorization"
)

// Migrate creates or updates the schema for every persisted model, including
// the ticket_fields join table backing the ticket/field relation, and seeds
// the well-known roles.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.RoleModel{},
		&models.UserModel{},
		&models.FieldModel{},
		&models.TicketModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return seedRoles(db)
}

// seedRoles ensures the admin and member roles occupy their fixed rows.
func seedRoles(db *gorm.DB) error {
	seeds := []models.RoleModel{
		{ID: uint(authorization.RoleIDAdmin), RoleName: "admin", RoleDescription: "Full access to every resource"},
		{ID: uint(authorization.RoleIDMember), RoleName: "member", RoleDescription: "Default role for new accounts"},
	}
	for _, seed := range seeds {
		if err := db.Where("id = ?", seed.ID).FirstOrCreate(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", seed.RoleName, err)
		}
	}
	return nil
}
