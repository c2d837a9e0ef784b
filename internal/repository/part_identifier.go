package repository

import (
	"context"

	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartIdentifierRepository handles database operations for part identifiers
type PartIdentifierRepository struct {
	db *gorm.DB
}

// Ensure PartIdentifierRepository implements PartIdentifierRepositoryInterface
var _ PartIdentifierRepositoryInterface = (*PartIdentifierRepository)(nil)

// NewPartIdentifierRepository creates a new part identifier repository
func NewPartIdentifierRepository(db *gorm.DB) *PartIdentifierRepository {
	return &PartIdentifierRepository{db: db}
}

// Create inserts a new part identifier
func (r *PartIdentifierRepository) Create(identifier *models.PartIdentifier) error {
	return r.db.Create(identifier).Error
}

// GetByID retrieves a part identifier by ID
func (r *PartIdentifierRepository) GetByID(id uuid.UUID) (*models.PartIdentifier, error) {
	var identifier models.PartIdentifier
	if err := r.db.First(&identifier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &identifier, nil
}

// GetByNormValue retrieves the identifier with the exact normalized value in
// an organization
func (r *PartIdentifierRepository) GetByNormValue(ctx context.Context, orgID uuid.UUID, normValue string) (*models.PartIdentifier, error) {
	var identifier models.PartIdentifier
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND norm_value = ?", orgID, normValue).
		First(&identifier).Error
	if err != nil {
		return nil, err
	}
	return &identifier, nil
}

// GetByInventoryItemID retrieves all identifiers linked to an inventory item
func (r *PartIdentifierRepository) GetByInventoryItemID(itemID uuid.UUID) ([]models.PartIdentifier, error) {
	var identifiers []models.PartIdentifier
	if err := r.db.Where("inventory_item_id = ?", itemID).Find(&identifiers).Error; err != nil {
		return nil, err
	}
	return identifiers, nil
}

// Search retrieves identifiers whose normalized value starts with the given
// normalized term, capped at limit, ordered by raw value
func (r *PartIdentifierRepository) Search(ctx context.Context, orgID uuid.UUID, normTerm string, limit int) ([]models.PartIdentifier, error) {
	var identifiers []models.PartIdentifier
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND norm_value LIKE ?", orgID, normTerm+"%").
		Order("raw_value ASC").
		Limit(limit).
		Find(&identifiers).Error
	if err != nil {
		return nil, err
	}
	return identifiers, nil
}
