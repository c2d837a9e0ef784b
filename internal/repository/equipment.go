package repository

import (
	"fleet-parts-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles read access to the equipment population.
// Equipment lifecycle is owned by another subsystem; the matching engine
// only reads.
type EquipmentRepository struct {
	db *gorm.DB
}

// Ensure EquipmentRepository implements EquipmentRepositoryInterface
var _ EquipmentRepositoryInterface = (*EquipmentRepository)(nil)

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// GetByID retrieves an equipment record by ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.db.First(&eq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// GetByOrganizationID retrieves all equipment in an organization
func (r *EquipmentRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Equipment, error) {
	var equipment []models.Equipment
	if err := r.db.Where("organization_id = ?", orgID).Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}
