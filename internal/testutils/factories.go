package testutils

import (
	"time"

	"fleet-parts-backend/internal/database/models"
	"fleet-parts-backend/internal/matching"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Name is unique; derive from the ID to avoid collisions across tests
		Name:        "test-fleet-" + id.String()[:8],
		DisplayName: "Test Fleet Operations",
		Description: "A test organization for testing purposes",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates a test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	return &models.Equipment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Manufacturer:   "Caterpillar",
		Model:          "D6T",
		SerialNumber:   "CAT00D6T-0001",
		UnitNumber:     "U-100",
	}
}

// WithOrganization sets the organization ID for the equipment
func (f *EquipmentFactory) WithOrganization(orgID uuid.UUID) *models.Equipment {
	equipment := f.Create()
	equipment.OrganizationID = orgID
	return equipment
}

// WithMakeModel sets the manufacturer and model for the equipment
func (f *EquipmentFactory) WithMakeModel(manufacturer, model string) *models.Equipment {
	equipment := f.Create()
	equipment.Manufacturer = manufacturer
	equipment.Model = model
	return equipment
}

// InventoryItemFactory provides methods to create test InventoryItem data
type InventoryItemFactory struct{}

// NewInventoryItemFactory creates a new InventoryItemFactory
func NewInventoryItemFactory() *InventoryItemFactory {
	return &InventoryItemFactory{}
}

// Create creates a test InventoryItem with default values
func (f *InventoryItemFactory) Create() *models.InventoryItem {
	id := uuid.New()
	return &models.InventoryItem{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		SKU:            "SKU-" + id.String()[:8],
		Name:           "Hydraulic Filter",
		Description:    "A test inventory item for testing purposes",
		QuantityOnHand: 10,
	}
}

// WithOrganization sets the organization ID for the inventory item
func (f *InventoryItemFactory) WithOrganization(orgID uuid.UUID) *models.InventoryItem {
	item := f.Create()
	item.OrganizationID = orgID
	return item
}

// WithName sets a custom name for the inventory item
func (f *InventoryItemFactory) WithName(name string) *models.InventoryItem {
	item := f.Create()
	item.Name = name
	return item
}

// CompatibilityRuleFactory provides methods to create test CompatibilityRule data
type CompatibilityRuleFactory struct{}

// NewCompatibilityRuleFactory creates a new CompatibilityRuleFactory
func NewCompatibilityRuleFactory() *CompatibilityRuleFactory {
	return &CompatibilityRuleFactory{}
}

// Create creates a test CompatibilityRule with default values
func (f *CompatibilityRuleFactory) Create() *models.CompatibilityRule {
	model := "D6T"
	modelNorm := matching.Normalize(model)
	return &models.CompatibilityRule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InventoryItemID:  uuid.New(),
		Manufacturer:     "Caterpillar",
		Model:            &model,
		ManufacturerNorm: matching.Normalize("Caterpillar"),
		ModelNorm:        &modelNorm,
		MatchType:        models.MatchTypeExact,
	}
}

// WithItem sets the inventory item ID for the rule
func (f *CompatibilityRuleFactory) WithItem(itemID uuid.UUID) *models.CompatibilityRule {
	rule := f.Create()
	rule.InventoryItemID = itemID
	return rule
}

// WithMakeModel sets the manufacturer and model (and their normalized forms) for the rule
func (f *CompatibilityRuleFactory) WithMakeModel(manufacturer, model string) *models.CompatibilityRule {
	rule := f.Create()
	rule.Manufacturer = manufacturer
	rule.ManufacturerNorm = matching.Normalize(manufacturer)
	modelNorm := matching.Normalize(model)
	rule.Model = &model
	rule.ModelNorm = &modelNorm
	return rule
}

// WithMatchType sets the match type for the rule. MatchTypeAny clears the model.
func (f *CompatibilityRuleFactory) WithMatchType(matchType models.MatchType) *models.CompatibilityRule {
	rule := f.Create()
	rule.MatchType = matchType
	if matchType == models.MatchTypeAny {
		rule.Model = nil
		rule.ModelNorm = nil
	}
	return rule
}

// PartIdentifierFactory provides methods to create test PartIdentifier data
type PartIdentifierFactory struct{}

// NewPartIdentifierFactory creates a new PartIdentifierFactory
func NewPartIdentifierFactory() *PartIdentifierFactory {
	return &PartIdentifierFactory{}
}

// Create creates a test PartIdentifier with default values
func (f *PartIdentifierFactory) Create() *models.PartIdentifier {
	id := uuid.New()
	raw := "PN-" + id.String()[:8]
	return &models.PartIdentifier{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		IdentifierType: models.IdentifierTypeOEM,
		RawValue:       raw,
		NormValue:      matching.Normalize(raw),
		Manufacturer:   "Caterpillar",
	}
}

// WithOrganization sets the organization ID for the identifier
func (f *PartIdentifierFactory) WithOrganization(orgID uuid.UUID) *models.PartIdentifier {
	identifier := f.Create()
	identifier.OrganizationID = orgID
	return identifier
}

// WithRawValue sets the raw value (and its normalized form) for the identifier
func (f *PartIdentifierFactory) WithRawValue(raw string) *models.PartIdentifier {
	identifier := f.Create()
	identifier.RawValue = raw
	identifier.NormValue = matching.Normalize(raw)
	return identifier
}

// WithItem links the identifier to an inventory item
func (f *PartIdentifierFactory) WithItem(itemID uuid.UUID) *models.PartIdentifier {
	identifier := f.Create()
	identifier.InventoryItemID = &itemID
	return identifier
}

// AlternateGroupFactory provides methods to create test AlternateGroup data
type AlternateGroupFactory struct{}

// NewAlternateGroupFactory creates a new AlternateGroupFactory
func NewAlternateGroupFactory() *AlternateGroupFactory {
	return &AlternateGroupFactory{}
}

// Create creates a test AlternateGroup with default values
func (f *AlternateGroupFactory) Create() *models.AlternateGroup {
	return &models.AlternateGroup{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Hydraulic Filter Alternates",
		Description:    "A test alternate group for testing purposes",
		Status:         models.GroupStatusUnverified,
	}
}

// WithOrganization sets the organization ID for the group
func (f *AlternateGroupFactory) WithOrganization(orgID uuid.UUID) *models.AlternateGroup {
	group := f.Create()
	group.OrganizationID = orgID
	return group
}

// WithStatus sets the status for the group
func (f *AlternateGroupFactory) WithStatus(status models.GroupStatus) *models.AlternateGroup {
	group := f.Create()
	group.Status = status
	return group
}

// IdentifierMember creates a group member referencing a part identifier
func (f *AlternateGroupFactory) IdentifierMember(groupID, identifierID uuid.UUID) *models.AlternateGroupMember {
	return &models.AlternateGroupMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:          groupID,
		PartIdentifierID: &identifierID,
	}
}

// ItemMember creates a group member referencing an inventory item
func (f *AlternateGroupFactory) ItemMember(groupID, itemID uuid.UUID) *models.AlternateGroupMember {
	return &models.AlternateGroupMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:         groupID,
		InventoryItemID: &itemID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization      *OrganizationFactory
	Equipment         *EquipmentFactory
	InventoryItem     *InventoryItemFactory
	CompatibilityRule *CompatibilityRuleFactory
	PartIdentifier    *PartIdentifierFactory
	AlternateGroup    *AlternateGroupFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:      NewOrganizationFactory(),
		Equipment:         NewEquipmentFactory(),
		InventoryItem:     NewInventoryItemFactory(),
		CompatibilityRule: NewCompatibilityRuleFactory(),
		PartIdentifier:    NewPartIdentifierFactory(),
		AlternateGroup:    NewAlternateGroupFactory(),
	}
}
