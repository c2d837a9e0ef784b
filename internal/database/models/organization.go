package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Equipment       []Equipment       `json:"equipment,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	InventoryItems  []InventoryItem   `json:"inventory_items,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	PartIdentifiers []PartIdentifier `json:"part_identifiers,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	AlternateGroups []AlternateGroup `json:"alternate_groups,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
