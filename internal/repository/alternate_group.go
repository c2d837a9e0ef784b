package repository

import (
	"context"

	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlternateGroupRepository handles database operations for alternate groups
// and their members
type AlternateGroupRepository struct {
	db *gorm.DB
}

// Ensure AlternateGroupRepository implements AlternateGroupRepositoryInterface
var _ AlternateGroupRepositoryInterface = (*AlternateGroupRepository)(nil)

// NewAlternateGroupRepository creates a new alternate group repository
func NewAlternateGroupRepository(db *gorm.DB) *AlternateGroupRepository {
	return &AlternateGroupRepository{db: db}
}

// membersOrdered preloads members primary-first, then by creation time
func membersOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, created_at ASC")
}

// Create inserts a new alternate group
func (r *AlternateGroupRepository) Create(group *models.AlternateGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves an alternate group by ID without members
func (r *AlternateGroupRepository) GetByID(id uuid.UUID) (*models.AlternateGroup, error) {
	var group models.AlternateGroup
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetWithMembers retrieves an alternate group with its members and their
// identifier/inventory-item display data
func (r *AlternateGroupRepository) GetWithMembers(id uuid.UUID) (*models.AlternateGroup, error) {
	var group models.AlternateGroup
	err := r.db.
		Preload("Members", membersOrdered).
		Preload("Members.PartIdentifier").
		Preload("Members.InventoryItem").
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByOrganizationID retrieves alternate groups of an organization with pagination
func (r *AlternateGroupRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.AlternateGroup, int64, error) {
	var groups []models.AlternateGroup
	var total int64

	if err := r.db.Model(&models.AlternateGroup{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// Update applies a partial field patch to a group
func (r *AlternateGroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.AlternateGroup{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a group; members cascade at the database level
func (r *AlternateGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AlternateGroup{}, "id = ?", id).Error
}

// AddMember inserts a group member; duplicate adds surface as
// gorm.ErrDuplicatedKey via the partial unique indexes
func (r *AlternateGroupRepository) AddMember(member *models.AlternateGroupMember) error {
	return r.db.Create(member).Error
}

// GetMemberByID retrieves a group member by ID
func (r *AlternateGroupRepository) GetMemberByID(memberID uuid.UUID) (*models.AlternateGroupMember, error) {
	var member models.AlternateGroupMember
	if err := r.db.First(&member, "id = ?", memberID).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember removes a group member by ID
func (r *AlternateGroupRepository) RemoveMember(memberID uuid.UUID) error {
	return r.db.Delete(&models.AlternateGroupMember{}, "id = ?", memberID).Error
}

// GetGroupsByIdentifierIDs retrieves all groups (with members) containing any
// of the given part identifiers
func (r *AlternateGroupRepository) GetGroupsByIdentifierIDs(ctx context.Context, identifierIDs []uuid.UUID) ([]models.AlternateGroup, error) {
	if len(identifierIDs) == 0 {
		return []models.AlternateGroup{}, nil
	}
	var groupIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.AlternateGroupMember{}).
		Where("part_identifier_id IN ?", identifierIDs).
		Distinct().
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, err
	}
	return r.getGroupsWithMembers(ctx, groupIDs)
}

// GetGroupsByInventoryItemID retrieves all groups (with members) containing
// the given inventory item
func (r *AlternateGroupRepository) GetGroupsByInventoryItemID(ctx context.Context, itemID uuid.UUID) ([]models.AlternateGroup, error) {
	var groupIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.AlternateGroupMember{}).
		Where("inventory_item_id = ?", itemID).
		Distinct().
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, err
	}
	return r.getGroupsWithMembers(ctx, groupIDs)
}

func (r *AlternateGroupRepository) getGroupsWithMembers(ctx context.Context, groupIDs []uuid.UUID) ([]models.AlternateGroup, error) {
	if len(groupIDs) == 0 {
		return []models.AlternateGroup{}, nil
	}
	var groups []models.AlternateGroup
	err := r.db.WithContext(ctx).
		Preload("Members", membersOrdered).
		Preload("Members.PartIdentifier").
		Preload("Members.InventoryItem").
		Where("id IN ?", groupIDs).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
