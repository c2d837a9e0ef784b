package models

import "github.com/google/uuid"

// InventoryItem represents a stocked part (read-only collaborator; the
// engine attaches compatibility rules and group memberships to it).
type InventoryItem struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	SKU            string    `json:"sku" gorm:"size:100;index" validate:"max=100"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string    `json:"description" gorm:"type:text"`
	QuantityOnHand int       `json:"quantity_on_hand" gorm:"not null;default:0"`

	Organization       Organization        `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CompatibilityRules []CompatibilityRule `json:"compatibility_rules,omitempty" gorm:"foreignKey:InventoryItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}
