package models

type FieldModel struct {
	ID        uint   `gorm:"primaryKey"`
	FieldName string `gorm:"column:field_name;uniqueIndex;size:100;not null"`
	Type      string `gorm:"size:50;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FieldModel) TableName() string {
	return "fields"
}

func (m FieldModel) GetID() uint {
	return m.ID
}
