package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/matching"
	"fleet-parts-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompatibilityService provides compatibility rule business logic
type CompatibilityService struct {
	ruleRepo      repository.CompatibilityRuleRepositoryInterface
	itemRepo      repository.InventoryItemRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	validator     *validator.Validate
}

// Ensure CompatibilityService implements CompatibilityServiceInterface
var _ CompatibilityServiceInterface = (*CompatibilityService)(nil)

// NewCompatibilityService creates a new CompatibilityService
func NewCompatibilityService(
	ruleRepo repository.CompatibilityRuleRepositoryInterface,
	itemRepo repository.InventoryItemRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	validator *validator.Validate,
) *CompatibilityService {
	return &CompatibilityService{
		ruleRepo:      ruleRepo,
		itemRepo:      itemRepo,
		equipmentRepo: equipmentRepo,
		validator:     validator,
	}
}

// RuleRequest represents a candidate compatibility rule. MatchType is
// optional: when absent it is inferred (no model = any, wildcard characters
// present = wildcard, otherwise exact).
type RuleRequest struct {
	Manufacturer string            `json:"manufacturer" validate:"max=100"`
	Model        *string           `json:"model,omitempty" validate:"omitempty,max=100"`
	MatchType    *models.MatchType `json:"match_type,omitempty"`
}

// CompatibilityRuleResponse represents a compatibility rule in API responses
type CompatibilityRuleResponse struct {
	ID              uuid.UUID        `json:"id"`
	InventoryItemID uuid.UUID        `json:"inventory_item_id"`
	Manufacturer    string           `json:"manufacturer"`
	Model           *string          `json:"model,omitempty"`
	MatchType       models.MatchType `json:"match_type"`
}

// BulkReplaceResponse reports how many rules a bulk replace actually set
type BulkReplaceResponse struct {
	RulesSet int `json:"rules_set"`
}

// CompatiblePartResponse represents an inventory item matched for a
// make/model lookup
type CompatiblePartResponse struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	QuantityOnHand  int       `json:"quantity_on_hand"`
}

// GetRulesForItem returns all rules attached to an inventory item
func (s *CompatibilityService) GetRulesForItem(organizationID, itemID uuid.UUID) ([]CompatibilityRuleResponse, error) {
	if _, err := s.ownedItem(organizationID, itemID); err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.GetByItemID(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get compatibility rules: %w", err)
	}
	res := make([]CompatibilityRuleResponse, 0, len(rules))
	for i := range rules {
		res = append(res, toRuleResponse(&rules[i]))
	}
	return res, nil
}

// AddRule validates and attaches a single rule to an inventory item
func (s *CompatibilityService) AddRule(organizationID, itemID uuid.UUID, req *RuleRequest) (*CompatibilityRuleResponse, error) {
	if _, err := s.ownedItem(organizationID, itemID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	rule, err := buildRule(itemID, req)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperrors.NewValidationError("manufacturer", "manufacturer is required")
	}

	// Reject duplicates before hitting the unique index so the blank-model
	// (any) case is covered too; the index only guards non-null model rows.
	existing, err := s.ruleRepo.GetByItemID(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rules: %w", err)
	}
	for i := range existing {
		if sameRuleKey(&existing[i], rule) {
			return nil, apperrors.ErrCompatibilityRuleExists
		}
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCompatibilityRuleExists
		}
		return nil, fmt.Errorf("failed to create compatibility rule: %w", err)
	}
	res := toRuleResponse(rule)
	return &res, nil
}

// RemoveRule deletes a rule after verifying the owning item's organization
func (s *CompatibilityService) RemoveRule(organizationID, ruleID uuid.UUID) error {
	rule, err := s.ruleRepo.GetByID(ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompatibilityRuleNotFound
		}
		return fmt.Errorf("failed to get compatibility rule: %w", err)
	}
	if rule.InventoryItem.OrganizationID != organizationID {
		return apperrors.ErrCompatibilityRuleAccessDenied
	}
	if err := s.ruleRepo.Delete(ruleID); err != nil {
		return fmt.Errorf("failed to delete compatibility rule: %w", err)
	}
	return nil
}

// BulkReplaceRules atomically replaces an item's entire rule set. Candidates
// with a blank manufacturer are dropped silently, duplicates by normalized
// (manufacturer, model) key keep the first occurrence.
func (s *CompatibilityService) BulkReplaceRules(organizationID, itemID uuid.UUID, reqs []RuleRequest) (*BulkReplaceResponse, error) {
	if _, err := s.ownedItem(organizationID, itemID); err != nil {
		return nil, err
	}

	rules := make([]models.CompatibilityRule, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))
	for i := range reqs {
		rule, err := buildRule(itemID, &reqs[i])
		if err != nil {
			return nil, err
		}
		if rule == nil {
			continue // incomplete entry, not an error
		}
		key := dedupKey(rule)
		if _, ok := seen[key]; ok {
			continue // first occurrence wins
		}
		seen[key] = struct{}{}
		rules = append(rules, *rule)
	}

	if err := s.ruleRepo.ReplaceAllForItem(itemID, rules); err != nil {
		return nil, fmt.Errorf("failed to replace compatibility rules: %w", err)
	}
	return &BulkReplaceResponse{RulesSet: len(rules)}, nil
}

// CountEquipmentMatches returns the number of distinct equipment records
// matched by any candidate rule. An empty or all-invalid candidate set
// returns 0 without querying.
func (s *CompatibilityService) CountEquipmentMatches(organizationID uuid.UUID, reqs []RuleRequest) (int, error) {
	rules := make([]models.CompatibilityRule, 0, len(reqs))
	for i := range reqs {
		rule, err := buildRule(uuid.Nil, &reqs[i])
		if err != nil || rule == nil {
			continue // preview tolerates invalid entries
		}
		rules = append(rules, *rule)
	}
	if len(rules) == 0 {
		return 0, nil
	}

	equipment, err := s.equipmentRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return 0, fmt.Errorf("failed to get equipment: %w", err)
	}
	count := 0
	for i := range equipment {
		if matching.MatchesAny(rules, equipment[i].Manufacturer, equipment[i].Model) {
			count++
		}
	}
	return count, nil
}

// GetCompatiblePartsForMakeModel returns the distinct inventory items whose
// rules cover the given manufacturer/model
func (s *CompatibilityService) GetCompatiblePartsForMakeModel(organizationID uuid.UUID, manufacturer, model string) ([]CompatiblePartResponse, error) {
	if matching.Normalize(manufacturer) == "" {
		return []CompatiblePartResponse{}, nil
	}
	rules, err := s.ruleRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get compatibility rules: %w", err)
	}

	seen := make(map[uuid.UUID]struct{})
	parts := make([]CompatiblePartResponse, 0)
	for i := range rules {
		if !matching.Matches(&rules[i], manufacturer, model) {
			continue
		}
		if _, ok := seen[rules[i].InventoryItemID]; ok {
			continue
		}
		seen[rules[i].InventoryItemID] = struct{}{}
		item := rules[i].InventoryItem
		parts = append(parts, CompatiblePartResponse{
			InventoryItemID: item.ID,
			SKU:             item.SKU,
			Name:            item.Name,
			QuantityOnHand:  item.QuantityOnHand,
		})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })
	return parts, nil
}

// ownedItem fetches an inventory item and enforces the tenant boundary
func (s *CompatibilityService) ownedItem(organizationID, itemID uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item.OrganizationID != organizationID {
		return nil, apperrors.ErrInventoryItemAccessDenied
	}
	return item, nil
}

// buildRule normalizes a candidate and validates its pattern. A blank
// manufacturer yields (nil, nil): the entry is incomplete, not invalid.
func buildRule(itemID uuid.UUID, req *RuleRequest) (*models.CompatibilityRule, error) {
	manufacturer := strings.TrimSpace(req.Manufacturer)
	if manufacturer == "" {
		return nil, nil
	}

	modelNorm := matching.NormalizePtr(req.Model)
	var model *string
	if modelNorm != nil {
		trimmed := strings.TrimSpace(*req.Model)
		model = &trimmed
	}

	matchType := inferMatchType(modelNorm)
	if req.MatchType != nil {
		if !req.MatchType.IsValid() {
			return nil, apperrors.NewValidationError("match_type", "unknown match type")
		}
		matchType = *req.MatchType
	}
	if err := matching.ValidatePattern(matchType, model); err != nil {
		return nil, err
	}
	if matchType == models.MatchTypeAny {
		model = nil
		modelNorm = nil
	}

	return &models.CompatibilityRule{
		InventoryItemID:  itemID,
		Manufacturer:     manufacturer,
		Model:            model,
		ManufacturerNorm: matching.Normalize(manufacturer),
		ModelNorm:        modelNorm,
		MatchType:        matchType,
	}, nil
}

// inferMatchType picks the match type for requests that do not declare one
func inferMatchType(modelNorm *string) models.MatchType {
	if modelNorm == nil {
		return models.MatchTypeAny
	}
	if strings.ContainsAny(*modelNorm, "*?") {
		return models.MatchTypeWildcard
	}
	return models.MatchTypeExact
}

// dedupKey is the normalized (manufacturer, model) identity of a rule
func dedupKey(rule *models.CompatibilityRule) string {
	model := ""
	if rule.ModelNorm != nil {
		model = *rule.ModelNorm
	}
	return rule.ManufacturerNorm + "\x00" + model
}

// sameRuleKey compares two rules on their full normalized tuple
func sameRuleKey(a, b *models.CompatibilityRule) bool {
	if a.ManufacturerNorm != b.ManufacturerNorm || a.MatchType != b.MatchType {
		return false
	}
	am, bm := "", ""
	if a.ModelNorm != nil {
		am = *a.ModelNorm
	}
	if b.ModelNorm != nil {
		bm = *b.ModelNorm
	}
	return am == bm
}

func toRuleResponse(rule *models.CompatibilityRule) CompatibilityRuleResponse {
	return CompatibilityRuleResponse{
		ID:              rule.ID,
		InventoryItemID: rule.InventoryItemID,
		Manufacturer:    rule.Manufacturer,
		Model:           rule.Model,
		MatchType:       rule.MatchType,
	}
}
