package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompatibilityServiceInterface defines the interface for compatibility rule operations
type CompatibilityServiceInterface interface {
	GetRulesForItem(organizationID, itemID uuid.UUID) ([]CompatibilityRuleResponse, error)
	AddRule(organizationID, itemID uuid.UUID, req *RuleRequest) (*CompatibilityRuleResponse, error)
	RemoveRule(organizationID, ruleID uuid.UUID) error
	BulkReplaceRules(organizationID, itemID uuid.UUID, reqs []RuleRequest) (*BulkReplaceResponse, error)
	CountEquipmentMatches(organizationID uuid.UUID, reqs []RuleRequest) (int, error)
	GetCompatiblePartsForMakeModel(organizationID uuid.UUID, manufacturer, model string) ([]CompatiblePartResponse, error)
}

// AlternateServiceInterface defines the interface for alternate group operations
type AlternateServiceInterface interface {
	CreateGroup(organizationID uuid.UUID, req *CreateGroupRequest) (*AlternateGroupResponse, error)
	UpdateGroup(organizationID, groupID uuid.UUID, req *UpdateGroupRequest) (*AlternateGroupResponse, error)
	DeleteGroup(organizationID, groupID uuid.UUID) error
	GetGroupByID(organizationID, groupID uuid.UUID) (*AlternateGroupResponse, error)
	ListGroups(organizationID uuid.UUID, page, pageSize int) (*AlternateGroupListResponse, error)
	AddIdentifierToGroup(organizationID, groupID, identifierID uuid.UUID, isPrimary bool, notes string) (*AlternateGroupResponse, error)
	AddInventoryItemToGroup(organizationID, groupID, itemID uuid.UUID, isPrimary bool, notes string) (*AlternateGroupResponse, error)
	RemoveGroupMember(organizationID, groupID, memberID uuid.UUID) error
	GetAlternatesForPartNumber(ctx context.Context, organizationID uuid.UUID, partNumber string) ([]AlternateResult, error)
	GetAlternatesForInventoryItem(organizationID, itemID uuid.UUID) ([]AlternateResult, error)
}

// PartIdentifierServiceInterface defines the interface for part identifier operations
type PartIdentifierServiceInterface interface {
	Create(organizationID uuid.UUID, req *CreatePartIdentifierRequest) (*PartIdentifierResponse, error)
	Search(ctx context.Context, organizationID uuid.UUID, term string) ([]PartIdentifierResponse, error)
}
