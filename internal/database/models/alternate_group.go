package models

import (
	"time"

	"github.com/google/uuid"
)

// AlternateGroup is a named set of mutually interchangeable parts.
// VerifiedBy/VerifiedAt are stamped on every transition to verified.
type AlternateGroup struct {
	BaseModel
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string      `json:"description" gorm:"type:text"`
	Status         GroupStatus `json:"status" gorm:"type:varchar(20);not null;default:'unverified'" validate:"required"`
	Notes          string      `json:"notes" gorm:"type:text"`
	EvidenceURL    string      `json:"evidence_url" gorm:"size:500" validate:"omitempty,max=500"`
	VerifiedBy     string      `json:"verified_by,omitempty" gorm:"size:100"`
	VerifiedAt     *time.Time  `json:"verified_at,omitempty"`

	Organization Organization           `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Members      []AlternateGroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AlternateGroup
func (AlternateGroup) TableName() string {
	return "alternate_groups"
}

// AlternateGroupMember references either a part identifier or an inventory
// item, never both and never neither. The partial unique indexes make
// duplicate adds idempotent at the storage layer.
type AlternateGroupMember struct {
	BaseModel
	GroupID          uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_group_member_identifier;uniqueIndex:idx_group_member_item" validate:"required"`
	PartIdentifierID *uuid.UUID `json:"part_identifier_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_group_member_identifier,where:part_identifier_id IS NOT NULL"`
	InventoryItemID  *uuid.UUID `json:"inventory_item_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_group_member_item,where:inventory_item_id IS NOT NULL"`
	IsPrimary        bool       `json:"is_primary" gorm:"not null;default:false"`
	Notes            string     `json:"notes" gorm:"type:text"`

	Group          AlternateGroup  `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	PartIdentifier *PartIdentifier `json:"part_identifier,omitempty" gorm:"foreignKey:PartIdentifierID;constraint:OnDelete:CASCADE"`
	InventoryItem  *InventoryItem  `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AlternateGroupMember
func (AlternateGroupMember) TableName() string {
	return "alternate_group_members"
}
