package repository

import (
	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItemRepository handles database operations for inventory items
type InventoryItemRepository struct {
	db *gorm.DB
}

// Ensure InventoryItemRepository implements InventoryItemRepositoryInterface
var _ InventoryItemRepositoryInterface = (*InventoryItemRepository)(nil)

// NewInventoryItemRepository creates a new inventory item repository
func NewInventoryItemRepository(db *gorm.DB) *InventoryItemRepository {
	return &InventoryItemRepository{db: db}
}

// Create inserts a new inventory item
func (r *InventoryItemRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves an inventory item by ID
func (r *InventoryItemRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByOrganizationID retrieves all inventory items in an organization
func (r *InventoryItemRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.Where("organization_id = ?", orgID).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
