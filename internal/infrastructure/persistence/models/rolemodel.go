package models

type RoleModel struct {
	ID              uint   `gorm:"primaryKey"`
	RoleName        string `gorm:"column:role_name;uniqueIndex;size:100;not null"`
	RoleDescription string `gorm:"column:role_description;size:255"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

func (m RoleModel) GetID() uint {
	return m.ID
}
