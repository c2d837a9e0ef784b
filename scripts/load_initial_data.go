package main

import (
	"fleet-parts-backend/internal/config"
	"fleet-parts-backend/internal/database"
	"fleet-parts-backend/internal/database/models"
	"fleet-parts-backend/internal/matching"
	"fleet-parts-backend/internal/repository"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

type EquipmentData struct {
	OrganizationName string `yaml:"organization_name"`
	Manufacturer     string `yaml:"manufacturer"`
	Model            string `yaml:"model"`
	SerialNumber     string `yaml:"serial_number,omitempty"`
	UnitNumber       string `yaml:"unit_number"`
}

type InventoryItemData struct {
	OrganizationName string `yaml:"organization_name"`
	SKU              string `yaml:"sku"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
	QuantityOnHand   int    `yaml:"quantity_on_hand"`
}

type CompatibilityRuleData struct {
	InventoryItemSKU string `yaml:"inventory_item_sku"`
	Manufacturer     string `yaml:"manufacturer"`
	Model            string `yaml:"model,omitempty"`
	MatchType        string `yaml:"match_type,omitempty"`
}

type PartIdentifierData struct {
	OrganizationName string `yaml:"organization_name"`
	IdentifierType   string `yaml:"identifier_type"`
	RawValue         string `yaml:"raw_value"`
	Manufacturer     string `yaml:"manufacturer,omitempty"`
	Notes            string `yaml:"notes,omitempty"`
	InventoryItemSKU string `yaml:"inventory_item_sku,omitempty"`
}

type GroupMemberData struct {
	PartIdentifier   string `yaml:"part_identifier,omitempty"`
	InventoryItemSKU string `yaml:"inventory_item_sku,omitempty"`
	IsPrimary        bool   `yaml:"is_primary"`
	Notes            string `yaml:"notes,omitempty"`
}

type AlternateGroupData struct {
	OrganizationName string            `yaml:"organization_name"`
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description,omitempty"`
	Status           string            `yaml:"status,omitempty"`
	Notes            string            `yaml:"notes,omitempty"`
	EvidenceURL      string            `yaml:"evidence_url,omitempty"`
	VerifiedBy       string            `yaml:"verified_by,omitempty"`
	Members          []GroupMemberData `yaml:"members,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type EquipmentFile struct {
	Equipment []EquipmentData `yaml:"equipment"`
}

type InventoryItemsFile struct {
	InventoryItems []InventoryItemData `yaml:"inventory_items"`
}

type CompatibilityRulesFile struct {
	CompatibilityRules []CompatibilityRuleData `yaml:"compatibility_rules"`
}

type PartIdentifiersFile struct {
	PartIdentifiers []PartIdentifierData `yaml:"part_identifiers"`
}

type AlternateGroupsFile struct {
	AlternateGroups []AlternateGroupData `yaml:"alternate_groups"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadYAMLSection(dataDir, "organizations", func(f *OrganizationsFile) []OrganizationData {
		return f.Organizations
	})
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	equipment, err := loadYAMLSection(dataDir, "equipment", func(f *EquipmentFile) []EquipmentData {
		return f.Equipment
	})
	if err != nil {
		return fmt.Errorf("failed to load equipment: %w", err)
	}

	items, err := loadYAMLSection(dataDir, "inventory_items", func(f *InventoryItemsFile) []InventoryItemData {
		return f.InventoryItems
	})
	if err != nil {
		return fmt.Errorf("failed to load inventory items: %w", err)
	}

	rules, err := loadYAMLSection(dataDir, "compatibility_rules", func(f *CompatibilityRulesFile) []CompatibilityRuleData {
		return f.CompatibilityRules
	})
	if err != nil {
		return fmt.Errorf("failed to load compatibility rules: %w", err)
	}

	identifiers, err := loadYAMLSection(dataDir, "part_identifiers", func(f *PartIdentifiersFile) []PartIdentifierData {
		return f.PartIdentifiers
	})
	if err != nil {
		return fmt.Errorf("failed to load part identifiers: %w", err)
	}

	groups, err := loadYAMLSection(dataDir, "alternate_groups", func(f *AlternateGroupsFile) []AlternateGroupData {
		return f.AlternateGroups
	})
	if err != nil {
		return fmt.Errorf("failed to load alternate groups: %w", err)
	}

	// Create organizations first
	orgRepo := repository.NewOrganizationRepository(db)
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(orgRepo, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create equipment
	equipmentCreated := 0
	for _, equipmentData := range equipment {
		_, created, err := createEquipment(db, equipmentData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create equipment %s: %w", equipmentData.UnitNumber, err)
		}
		if created {
			equipmentCreated++
		}
	}
	log.Printf("Equipment: %d created, %d total", equipmentCreated, len(equipment))

	// Create inventory items, keyed by org name + SKU for the later sections
	itemMap := make(map[string]*models.InventoryItem)
	itemCreated := 0
	for _, itemData := range items {
		item, created, err := createInventoryItem(db, itemData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create inventory item %s: %w", itemData.SKU, err)
		}
		itemMap[itemData.OrganizationName+"/"+itemData.SKU] = item
		if created {
			itemCreated++
		}
	}
	log.Printf("Inventory items: %d created, %d total", itemCreated, len(items))

	// Create compatibility rules
	ruleCreated := 0
	for _, ruleData := range rules {
		created, err := createCompatibilityRule(db, ruleData, itemMap)
		if err != nil {
			log.Printf("Warning: failed to create rule %s/%s: %v", ruleData.Manufacturer, ruleData.Model, err)
			continue
		}
		if created {
			ruleCreated++
		}
	}
	log.Printf("Compatibility rules: %d created, %d total", ruleCreated, len(rules))

	// Create part identifiers, keyed by org name + normalized value
	identifierMap := make(map[string]*models.PartIdentifier)
	identifierCreated := 0
	for _, identifierData := range identifiers {
		identifier, created, err := createPartIdentifier(db, identifierData, orgMap, itemMap)
		if err != nil {
			log.Printf("Warning: failed to create part identifier %s: %v", identifierData.RawValue, err)
			continue
		}
		identifierMap[identifierData.OrganizationName+"/"+identifier.NormValue] = identifier
		if created {
			identifierCreated++
		}
	}
	log.Printf("Part identifiers: %d created, %d total", identifierCreated, len(identifiers))

	// Create alternate groups with their members
	groupCreated := 0
	for _, groupData := range groups {
		_, created, err := createAlternateGroup(db, groupData, orgMap, itemMap, identifierMap)
		if err != nil {
			log.Printf("Warning: failed to create alternate group %s: %v", groupData.Name, err)
			continue
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("Alternate groups: %d created, %d total", groupCreated, len(groups))

	return nil
}

// loadYAMLSection collects all entries of one section across the YAML files
// in dataDir whose path contains the section name.
func loadYAMLSection[F any, D any](dataDir, section string, extract func(*F) []D) ([]D, error) {
	var all []D

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, section) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, extract(&file)...)
		}
		return nil
	})

	return all, err
}

func createOrganization(orgRepo *repository.OrganizationRepository, orgData OrganizationData) (*models.Organization, bool, error) {
	org, err := orgRepo.GetByName(orgData.Name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			org = &models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Description: orgData.Description,
			}

			if err := orgRepo.Create(org); err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return org, false, nil // created = false (existing)
}

func createEquipment(db *gorm.DB, equipmentData EquipmentData, orgMap map[string]*models.Organization) (*models.Equipment, bool, error) {
	org := orgMap[equipmentData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for equipment %s", equipmentData.OrganizationName, equipmentData.UnitNumber)
	}

	var unit models.Equipment
	if err := db.Where("unit_number = ? AND organization_id = ?", equipmentData.UnitNumber, org.ID).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			unit = models.Equipment{
				OrganizationID: org.ID,
				Manufacturer:   equipmentData.Manufacturer,
				Model:          equipmentData.Model,
				SerialNumber:   equipmentData.SerialNumber,
				UnitNumber:     equipmentData.UnitNumber,
			}

			if err := db.Create(&unit).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create equipment: %w", err)
			}
			return &unit, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query equipment: %w", err)
		}
	}

	return &unit, false, nil // created = false (existing)
}

func createInventoryItem(db *gorm.DB, itemData InventoryItemData, orgMap map[string]*models.Organization) (*models.InventoryItem, bool, error) {
	org := orgMap[itemData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for inventory item %s", itemData.OrganizationName, itemData.SKU)
	}

	var item models.InventoryItem
	if err := db.Where("sku = ? AND organization_id = ?", itemData.SKU, org.ID).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			item = models.InventoryItem{
				OrganizationID: org.ID,
				SKU:            itemData.SKU,
				Name:           itemData.Name,
				Description:    itemData.Description,
				QuantityOnHand: itemData.QuantityOnHand,
			}

			if err := db.Create(&item).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create inventory item: %w", err)
			}
			return &item, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query inventory item: %w", err)
		}
	}

	return &item, false, nil // created = false (existing)
}

func createCompatibilityRule(db *gorm.DB, ruleData CompatibilityRuleData, itemMap map[string]*models.InventoryItem) (bool, error) {
	var item *models.InventoryItem
	for key, candidate := range itemMap {
		if strings.HasSuffix(key, "/"+ruleData.InventoryItemSKU) {
			item = candidate
			break
		}
	}
	if item == nil {
		return false, fmt.Errorf("inventory item %s not found", ruleData.InventoryItemSKU)
	}

	matchType := models.MatchType(ruleData.MatchType)
	if ruleData.MatchType == "" {
		matchType = inferMatchType(ruleData.Model)
	}

	var model *string
	if ruleData.Model != "" {
		model = &ruleData.Model
	}

	rule := models.CompatibilityRule{
		InventoryItemID:  item.ID,
		Manufacturer:     ruleData.Manufacturer,
		Model:            model,
		ManufacturerNorm: matching.Normalize(ruleData.Manufacturer),
		ModelNorm:        matching.NormalizePtr(model),
		MatchType:        matchType,
	}
	if err := matching.ValidatePattern(rule.MatchType, rule.ModelNorm); err != nil {
		return false, err
	}

	var existing models.CompatibilityRule
	query := db.Where("inventory_item_id = ? AND manufacturer_norm = ? AND match_type = ?",
		rule.InventoryItemID, rule.ManufacturerNorm, rule.MatchType)
	if rule.ModelNorm != nil {
		query = query.Where("model_norm = ?", *rule.ModelNorm)
	} else {
		query = query.Where("model_norm IS NULL")
	}
	if err := query.First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&rule).Error; err != nil {
				return false, fmt.Errorf("failed to create compatibility rule: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query compatibility rule: %w", err)
	}

	return false, nil // created = false (existing)
}

// inferMatchType mirrors the API-level default: no model means any model,
// a pattern with wildcard characters means a wildcard match.
func inferMatchType(model string) models.MatchType {
	if model == "" {
		return models.MatchTypeAny
	}
	if strings.ContainsAny(model, "*?") {
		return models.MatchTypeWildcard
	}
	return models.MatchTypeExact
}

func createPartIdentifier(db *gorm.DB, identifierData PartIdentifierData, orgMap map[string]*models.Organization, itemMap map[string]*models.InventoryItem) (*models.PartIdentifier, bool, error) {
	org := orgMap[identifierData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for part identifier %s", identifierData.OrganizationName, identifierData.RawValue)
	}

	var itemID *uuid.UUID
	if identifierData.InventoryItemSKU != "" {
		if item := itemMap[identifierData.OrganizationName+"/"+identifierData.InventoryItemSKU]; item != nil {
			itemID = &item.ID
		} else {
			log.Printf("Warning: inventory item %s not found for part identifier %s", identifierData.InventoryItemSKU, identifierData.RawValue)
		}
	}

	normValue := matching.Normalize(identifierData.RawValue)

	var identifier models.PartIdentifier
	if err := db.Where("norm_value = ? AND organization_id = ?", normValue, org.ID).First(&identifier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			identifier = models.PartIdentifier{
				OrganizationID:  org.ID,
				InventoryItemID: itemID,
				IdentifierType:  models.IdentifierType(identifierData.IdentifierType),
				RawValue:        identifierData.RawValue,
				NormValue:       normValue,
				Manufacturer:    identifierData.Manufacturer,
				Notes:           identifierData.Notes,
			}

			if err := db.Create(&identifier).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create part identifier: %w", err)
			}
			return &identifier, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query part identifier: %w", err)
		}
	}

	return &identifier, false, nil // created = false (existing)
}

func createAlternateGroup(db *gorm.DB, groupData AlternateGroupData, orgMap map[string]*models.Organization, itemMap map[string]*models.InventoryItem, identifierMap map[string]*models.PartIdentifier) (*models.AlternateGroup, bool, error) {
	org := orgMap[groupData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for alternate group %s", groupData.OrganizationName, groupData.Name)
	}

	status := models.GroupStatusUnverified
	if groupData.Status != "" {
		status = models.GroupStatus(groupData.Status)
	}

	var group models.AlternateGroup
	created := false
	if err := db.Where("name = ? AND organization_id = ?", groupData.Name, org.ID).First(&group).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			group = models.AlternateGroup{
				OrganizationID: org.ID,
				Name:           groupData.Name,
				Description:    groupData.Description,
				Status:         status,
				Notes:          groupData.Notes,
				EvidenceURL:    groupData.EvidenceURL,
			}
			if status == models.GroupStatusVerified && groupData.VerifiedBy != "" {
				now := time.Now()
				group.VerifiedBy = groupData.VerifiedBy
				group.VerifiedAt = &now
			}

			if err := db.Create(&group).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create alternate group: %w", err)
			}
			created = true
		} else {
			return nil, false, fmt.Errorf("failed to query alternate group: %w", err)
		}
	}

	for _, memberData := range groupData.Members {
		if err := createGroupMember(db, &group, groupData.OrganizationName, memberData, itemMap, identifierMap); err != nil {
			log.Printf("Warning: failed to add member to group %s: %v", groupData.Name, err)
		}
	}

	return &group, created, nil
}

func createGroupMember(db *gorm.DB, group *models.AlternateGroup, orgName string, memberData GroupMemberData, itemMap map[string]*models.InventoryItem, identifierMap map[string]*models.PartIdentifier) error {
	member := models.AlternateGroupMember{
		GroupID:   group.ID,
		IsPrimary: memberData.IsPrimary,
		Notes:     memberData.Notes,
	}

	switch {
	case memberData.PartIdentifier != "":
		identifier := identifierMap[orgName+"/"+matching.Normalize(memberData.PartIdentifier)]
		if identifier == nil {
			return fmt.Errorf("part identifier %s not found", memberData.PartIdentifier)
		}
		member.PartIdentifierID = &identifier.ID
	case memberData.InventoryItemSKU != "":
		item := itemMap[orgName+"/"+memberData.InventoryItemSKU]
		if item == nil {
			return fmt.Errorf("inventory item %s not found", memberData.InventoryItemSKU)
		}
		member.InventoryItemID = &item.ID
	default:
		return fmt.Errorf("member references neither a part identifier nor an inventory item")
	}

	var existing models.AlternateGroupMember
	query := db.Where("group_id = ?", group.ID)
	if member.PartIdentifierID != nil {
		query = query.Where("part_identifier_id = ?", *member.PartIdentifierID)
	} else {
		query = query.Where("inventory_item_id = ?", *member.InventoryItemID)
	}
	if err := query.First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to create group member: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to query group member: %w", err)
	}

	return nil // existing member, adding again is a no-op
}
