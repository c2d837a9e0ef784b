package repository

import (
	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompatibilityRuleRepository handles database operations for compatibility rules
type CompatibilityRuleRepository struct {
	db *gorm.DB
}

// Ensure CompatibilityRuleRepository implements CompatibilityRuleRepositoryInterface
var _ CompatibilityRuleRepositoryInterface = (*CompatibilityRuleRepository)(nil)

// NewCompatibilityRuleRepository creates a new compatibility rule repository
func NewCompatibilityRuleRepository(db *gorm.DB) *CompatibilityRuleRepository {
	return &CompatibilityRuleRepository{db: db}
}

// Create inserts a new compatibility rule
func (r *CompatibilityRuleRepository) Create(rule *models.CompatibilityRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a compatibility rule by ID with its owning item
func (r *CompatibilityRuleRepository) GetByID(id uuid.UUID) (*models.CompatibilityRule, error) {
	var rule models.CompatibilityRule
	if err := r.db.Preload("InventoryItem").First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByItemID retrieves all rules attached to an inventory item
func (r *CompatibilityRuleRepository) GetByItemID(itemID uuid.UUID) ([]models.CompatibilityRule, error) {
	var rules []models.CompatibilityRule
	if err := r.db.Where("inventory_item_id = ?", itemID).Order("manufacturer_norm ASC, model_norm ASC NULLS FIRST").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// GetByOrganizationID retrieves all rules belonging to items of an organization
func (r *CompatibilityRuleRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.CompatibilityRule, error) {
	var rules []models.CompatibilityRule
	err := r.db.
		Joins("JOIN inventory_items ON inventory_items.id = compatibility_rules.inventory_item_id").
		Where("inventory_items.organization_id = ?", orgID).
		Preload("InventoryItem").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ReplaceAllForItem atomically replaces the item's entire rule set.
// Delete and re-insert run in one transaction: a failed insert rolls back
// the delete, so an item-with-zero-rules state is never persisted.
func (r *CompatibilityRuleRepository) ReplaceAllForItem(itemID uuid.UUID, rules []models.CompatibilityRule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inventory_item_id = ?", itemID).Delete(&models.CompatibilityRule{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
}

// Delete removes a compatibility rule by ID
func (r *CompatibilityRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CompatibilityRule{}, "id = ?", id).Error
}
