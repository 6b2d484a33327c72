package models

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null;index"`
	Status       string `gorm:"size:50;not null;index"`
	Description  string `gorm:"type:text"`
	AssigneeID   uint   `gorm:"not null;index"`
	AssignedToID *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Genuine many-to-many: fields outlive the tickets they are attached to,
	// so the join rows go away with the ticket but the field rows stay.
	Fields []FieldModel `gorm:"many2many:ticket_fields;constraint:OnDelete:CASCADE"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

func (m TicketModel) GetID() uint {
	return m.ID
}
