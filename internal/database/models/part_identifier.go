package models

import "github.com/google/uuid"

// PartIdentifier is a cataloged part number (OEM, aftermarket, manufacturer
// PN, UPC or cross-reference) usable as a lookup key. NormValue is always
// normalize(RawValue) and is unique per organization.
type PartIdentifier struct {
	BaseModel
	OrganizationID  uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_org_identifier_norm" validate:"required"`
	InventoryItemID *uuid.UUID     `json:"inventory_item_id,omitempty" gorm:"type:uuid;index"`
	IdentifierType  IdentifierType `json:"identifier_type" gorm:"type:varchar(20);not null" validate:"required"`
	RawValue        string         `json:"raw_value" gorm:"not null;size:100" validate:"required,max=100"`
	NormValue       string         `json:"norm_value" gorm:"not null;size:100;uniqueIndex:idx_org_identifier_norm"`
	Manufacturer    string         `json:"manufacturer" gorm:"size:100" validate:"max=100"`
	Notes           string         `json:"notes" gorm:"type:text"`

	Organization  Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	InventoryItem *InventoryItem `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PartIdentifier
func (PartIdentifier) TableName() string {
	return "part_identifiers"
}
