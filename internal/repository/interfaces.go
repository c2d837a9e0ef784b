package repository

import (
	"context"

	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
}

// EquipmentRepositoryInterface defines the read-only interface the matching
// engine uses against the equipment population
type EquipmentRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Equipment, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Equipment, error)
}

// InventoryItemRepositoryInterface defines the interface for inventory item repository operations
type InventoryItemRepositoryInterface interface {
	Create(item *models.InventoryItem) error
	GetByID(id uuid.UUID) (*models.InventoryItem, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.InventoryItem, error)
}

// CompatibilityRuleRepositoryInterface defines the interface for compatibility rule repository operations
type CompatibilityRuleRepositoryInterface interface {
	Create(rule *models.CompatibilityRule) error
	GetByID(id uuid.UUID) (*models.CompatibilityRule, error)
	GetByItemID(itemID uuid.UUID) ([]models.CompatibilityRule, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.CompatibilityRule, error)
	ReplaceAllForItem(itemID uuid.UUID, rules []models.CompatibilityRule) error
	Delete(id uuid.UUID) error
}

// PartIdentifierRepositoryInterface defines the interface for part identifier repository operations
type PartIdentifierRepositoryInterface interface {
	Create(identifier *models.PartIdentifier) error
	GetByID(id uuid.UUID) (*models.PartIdentifier, error)
	GetByNormValue(ctx context.Context, orgID uuid.UUID, normValue string) (*models.PartIdentifier, error)
	GetByInventoryItemID(itemID uuid.UUID) ([]models.PartIdentifier, error)
	Search(ctx context.Context, orgID uuid.UUID, normTerm string, limit int) ([]models.PartIdentifier, error)
}

// AlternateGroupRepositoryInterface defines the interface for alternate group repository operations
type AlternateGroupRepositoryInterface interface {
	Create(group *models.AlternateGroup) error
	GetByID(id uuid.UUID) (*models.AlternateGroup, error)
	GetWithMembers(id uuid.UUID) (*models.AlternateGroup, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.AlternateGroup, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	AddMember(member *models.AlternateGroupMember) error
	GetMemberByID(memberID uuid.UUID) (*models.AlternateGroupMember, error)
	RemoveMember(memberID uuid.UUID) error
	GetGroupsByIdentifierIDs(ctx context.Context, identifierIDs []uuid.UUID) ([]models.AlternateGroup, error)
	GetGroupsByInventoryItemID(ctx context.Context, itemID uuid.UUID) ([]models.AlternateGroup, error)
}
