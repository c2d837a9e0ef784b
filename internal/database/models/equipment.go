package models

import "github.com/google/uuid"

// Equipment represents a fleet asset (read-only collaborator for the
// matching engine; lifecycle is owned by the equipment subsystem).
type Equipment struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Manufacturer   string    `json:"manufacturer" gorm:"not null;size:100" validate:"required,max=100"`
	Model          string    `json:"model" gorm:"size:100" validate:"max=100"`
	SerialNumber   string    `json:"serial_number" gorm:"size:100"`
	UnitNumber     string    `json:"unit_number" gorm:"size:50"`

	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
