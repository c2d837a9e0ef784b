package models

import "github.com/google/uuid"

// CompatibilityRule states which equipment an inventory item fits.
// Manufacturer/Model hold the display strings as entered; the *_norm columns
// hold the trimmed, lowercased values every comparison runs against, so
// storage-time and query-time normalization can never drift apart.
// ModelNorm is present iff Model is present; MatchTypeAny implies no model.
type CompatibilityRule struct {
	BaseModel
	InventoryItemID  uuid.UUID `json:"inventory_item_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_item_rule_norm" validate:"required"`
	Manufacturer     string    `json:"manufacturer" gorm:"not null;size:100" validate:"required,max=100"`
	Model            *string   `json:"model,omitempty" gorm:"size:100"`
	ManufacturerNorm string    `json:"manufacturer_norm" gorm:"not null;size:100;uniqueIndex:idx_item_rule_norm"`
	ModelNorm        *string   `json:"model_norm,omitempty" gorm:"size:100;uniqueIndex:idx_item_rule_norm"`
	MatchType        MatchType `json:"match_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_item_rule_norm" validate:"required"`

	InventoryItem InventoryItem `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CompatibilityRule
func (CompatibilityRule) TableName() string {
	return "compatibility_rules"
}
