package models

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:100;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	RoleID    uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// Role membership is resolved by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

func (m UserModel) GetID() uint {
	return m.ID
}
