package service_test

import (
	"errors"
	"testing"

	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/mocks"
	"fleet-parts-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompatibilityServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockRuleRepo         *mocks.MockCompatibilityRuleRepositoryInterface
	mockItemRepo         *mocks.MockInventoryItemRepositoryInterface
	mockEquipmentRepo    *mocks.MockEquipmentRepositoryInterface
	compatibilityService *service.CompatibilityService
	validator            *validator.Validate

	orgID  uuid.UUID
	itemID uuid.UUID
}

func (suite *CompatibilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRuleRepo = mocks.NewMockCompatibilityRuleRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockInventoryItemRepositoryInterface(suite.ctrl)
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.compatibilityService = service.NewCompatibilityService(
		suite.mockRuleRepo, suite.mockItemRepo, suite.mockEquipmentRepo, suite.validator,
	)
	suite.orgID = uuid.New()
	suite.itemID = uuid.New()
}

func (suite *CompatibilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompatibilityServiceTestSuite) ownedItem() *models.InventoryItem {
	return &models.InventoryItem{
		BaseModel:      models.BaseModel{ID: suite.itemID},
		OrganizationID: suite.orgID,
		SKU:            "FLT-100",
		Name:           "Hydraulic Filter",
		QuantityOnHand: 4,
	}
}

func strPtr(s string) *string { return &s }

func (suite *CompatibilityServiceTestSuite) TestAddRule_InfersExact_Success() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return([]models.CompatibilityRule{}, nil)
	suite.mockRuleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.CompatibilityRule) error {
		assert.Equal(suite.T(), suite.itemID, rule.InventoryItemID)
		assert.Equal(suite.T(), "Caterpillar", rule.Manufacturer)
		assert.Equal(suite.T(), "caterpillar", rule.ManufacturerNorm)
		assert.Equal(suite.T(), models.MatchTypeExact, rule.MatchType)
		assert.NotNil(suite.T(), rule.ModelNorm)
		assert.Equal(suite.T(), "d6t", *rule.ModelNorm)
		return nil
	})

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
		Model:        strPtr(" D6T "),
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), models.MatchTypeExact, resp.MatchType)
	assert.Equal(suite.T(), "D6T", *resp.Model)
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_InfersAnyWhenModelBlank() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return([]models.CompatibilityRule{}, nil)
	suite.mockRuleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.CompatibilityRule) error {
		assert.Equal(suite.T(), models.MatchTypeAny, rule.MatchType)
		assert.Nil(suite.T(), rule.Model)
		assert.Nil(suite.T(), rule.ModelNorm)
		return nil
	})

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
		Model:        strPtr("   "),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MatchTypeAny, resp.MatchType)
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_InfersWildcard() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return([]models.CompatibilityRule{}, nil)
	suite.mockRuleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(rule *models.CompatibilityRule) error {
		assert.Equal(suite.T(), models.MatchTypeWildcard, rule.MatchType)
		return nil
	})

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
		Model:        strPtr("D*T"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MatchTypeWildcard, resp.MatchType)
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_ExplicitPrefix() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return([]models.CompatibilityRule{}, nil)
	suite.mockRuleRepo.EXPECT().Create(gomock.Any()).Return(nil)

	matchType := models.MatchTypePrefix
	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "JLG",
		Model:        strPtr("JL-"),
		MatchType:    &matchType,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MatchTypePrefix, resp.MatchType)
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_OverbroadWildcardRejected() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
		Model:        strPtr("*-*"),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_BlankManufacturerRejected() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "   ",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_DuplicateNormalizedKey() {
	modelNorm := "d6t"
	model := "D6T"
	existing := []models.CompatibilityRule{
		{
			InventoryItemID:  suite.itemID,
			Manufacturer:     "CATERPILLAR",
			Model:            &model,
			ManufacturerNorm: "caterpillar",
			ModelNorm:        &modelNorm,
			MatchType:        models.MatchTypeExact,
		},
	}
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return(existing, nil)

	// Same rule modulo case and whitespace
	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: " caterpillar ",
		Model:        strPtr("d6t"),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_DuplicateRace_UniqueIndex() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return([]models.CompatibilityRule{}, nil)
	suite.mockRuleRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
		Model:        strPtr("D6T"),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_CrossTenantDenied() {
	foreign := suite.ownedItem()
	foreign.OrganizationID = uuid.New()
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(foreign, nil)

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *CompatibilityServiceTestSuite) TestAddRule_ItemNotFound() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.compatibilityService.AddRule(suite.orgID, suite.itemID, &service.RuleRequest{
		Manufacturer: "Caterpillar",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *CompatibilityServiceTestSuite) TestBulkReplace_DedupsAndDropsBlanks() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().ReplaceAllForItem(suite.itemID, gomock.Any()).DoAndReturn(
		func(itemID uuid.UUID, rules []models.CompatibilityRule) error {
			assert.Len(suite.T(), rules, 2)
			// First occurrence wins: the "D6T" display form survives, not "d6t"
			assert.Equal(suite.T(), "D6T", *rules[0].Model)
			assert.Equal(suite.T(), "John Deere", rules[1].Manufacturer)
			return nil
		})

	resp, err := suite.compatibilityService.BulkReplaceRules(suite.orgID, suite.itemID, []service.RuleRequest{
		{Manufacturer: "Caterpillar", Model: strPtr("D6T")},
		{Manufacturer: "  "}, // incomplete, dropped silently
		{Manufacturer: "CATERPILLAR", Model: strPtr(" d6t ")}, // dup of first
		{Manufacturer: "John Deere", Model: strPtr("310L")},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.RulesSet)
}

func (suite *CompatibilityServiceTestSuite) TestBulkReplace_EmptySetClearsRules() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().ReplaceAllForItem(suite.itemID, gomock.Len(0)).Return(nil)

	resp, err := suite.compatibilityService.BulkReplaceRules(suite.orgID, suite.itemID, []service.RuleRequest{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.RulesSet)
}

func (suite *CompatibilityServiceTestSuite) TestBulkReplace_InvalidPatternFailsWhole() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	// No ReplaceAllForItem expectation: nothing may be written

	resp, err := suite.compatibilityService.BulkReplaceRules(suite.orgID, suite.itemID, []service.RuleRequest{
		{Manufacturer: "Caterpillar", Model: strPtr("D6T")},
		{Manufacturer: "Caterpillar", Model: strPtr("*")},
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CompatibilityServiceTestSuite) TestBulkReplace_RepoErrorPropagates() {
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().ReplaceAllForItem(suite.itemID, gomock.Any()).Return(errors.New("tx aborted"))

	resp, err := suite.compatibilityService.BulkReplaceRules(suite.orgID, suite.itemID, []service.RuleRequest{
		{Manufacturer: "Caterpillar", Model: strPtr("D6T")},
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to replace compatibility rules")
}

func (suite *CompatibilityServiceTestSuite) TestCountMatches_EmptyCandidatesSkipsQuery() {
	// No equipmentRepo expectation: an all-invalid set never queries
	count, err := suite.compatibilityService.CountEquipmentMatches(suite.orgID, []service.RuleRequest{
		{Manufacturer: "   "},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, count)
}

func (suite *CompatibilityServiceTestSuite) TestCountMatches_CountsDistinctEquipment() {
	equipment := []models.Equipment{
		{OrganizationID: suite.orgID, Manufacturer: "Caterpillar", Model: "D6T"},
		{OrganizationID: suite.orgID, Manufacturer: "Caterpillar", Model: "D8T"},
		{OrganizationID: suite.orgID, Manufacturer: "John Deere", Model: "310L"},
	}
	suite.mockEquipmentRepo.EXPECT().GetByOrganizationID(suite.orgID).Return(equipment, nil)

	// Two candidates both match the first unit; it still counts once
	count, err := suite.compatibilityService.CountEquipmentMatches(suite.orgID, []service.RuleRequest{
		{Manufacturer: "Caterpillar", Model: strPtr("D6T")},
		{Manufacturer: "Caterpillar", Model: strPtr("D*T")},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, count)
}

func (suite *CompatibilityServiceTestSuite) TestCountMatches_InvalidEntriesIgnored() {
	equipment := []models.Equipment{
		{OrganizationID: suite.orgID, Manufacturer: "Caterpillar", Model: "D6T"},
	}
	suite.mockEquipmentRepo.EXPECT().GetByOrganizationID(suite.orgID).Return(equipment, nil)

	count, err := suite.compatibilityService.CountEquipmentMatches(suite.orgID, []service.RuleRequest{
		{Manufacturer: "Caterpillar", Model: strPtr("*")}, // invalid, skipped
		{Manufacturer: "Caterpillar", Model: strPtr("D6T")},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, count)
}

func (suite *CompatibilityServiceTestSuite) TestGetCompatibleParts_DistinctSorted() {
	filterID := uuid.New()
	beltID := uuid.New()
	model := "D6T"
	modelNorm := "d6t"
	prefix := "D"
	prefixNorm := "d"
	rules := []models.CompatibilityRule{
		{
			InventoryItemID:  filterID,
			Manufacturer:     "Caterpillar",
			Model:            &model,
			ManufacturerNorm: "caterpillar",
			ModelNorm:        &modelNorm,
			MatchType:        models.MatchTypeExact,
			InventoryItem: models.InventoryItem{
				BaseModel: models.BaseModel{ID: filterID},
				Name:      "Hydraulic Filter", SKU: "FLT-100", QuantityOnHand: 4,
			},
		},
		{
			InventoryItemID:  filterID,
			Manufacturer:     "Caterpillar",
			Model:            &prefix,
			ManufacturerNorm: "caterpillar",
			ModelNorm:        &prefixNorm,
			MatchType:        models.MatchTypePrefix,
			InventoryItem: models.InventoryItem{
				BaseModel: models.BaseModel{ID: filterID},
				Name:      "Hydraulic Filter", SKU: "FLT-100", QuantityOnHand: 4,
			},
		},
		{
			InventoryItemID:  beltID,
			Manufacturer:     "Caterpillar",
			ManufacturerNorm: "caterpillar",
			MatchType:        models.MatchTypeAny,
			InventoryItem: models.InventoryItem{
				BaseModel: models.BaseModel{ID: beltID},
				Name:      "Alternator Belt", SKU: "BLT-220", QuantityOnHand: 9,
			},
		},
	}
	suite.mockRuleRepo.EXPECT().GetByOrganizationID(suite.orgID).Return(rules, nil)

	parts, err := suite.compatibilityService.GetCompatiblePartsForMakeModel(suite.orgID, "CATERPILLAR", " d6t ")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), parts, 2)
	// Sorted by name; the double-matched filter appears once
	assert.Equal(suite.T(), "Alternator Belt", parts[0].Name)
	assert.Equal(suite.T(), "Hydraulic Filter", parts[1].Name)
}

func (suite *CompatibilityServiceTestSuite) TestGetCompatibleParts_BlankManufacturer() {
	// No repo expectation: blank manufacturer returns empty without querying
	parts, err := suite.compatibilityService.GetCompatiblePartsForMakeModel(suite.orgID, "  ", "D6T")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), parts)
}

func (suite *CompatibilityServiceTestSuite) TestRemoveRule_Success() {
	ruleID := uuid.New()
	rule := &models.CompatibilityRule{
		BaseModel:       models.BaseModel{ID: ruleID},
		InventoryItemID: suite.itemID,
		InventoryItem:   *suite.ownedItem(),
	}
	suite.mockRuleRepo.EXPECT().GetByID(ruleID).Return(rule, nil)
	suite.mockRuleRepo.EXPECT().Delete(ruleID).Return(nil)

	err := suite.compatibilityService.RemoveRule(suite.orgID, ruleID)

	assert.NoError(suite.T(), err)
}

func (suite *CompatibilityServiceTestSuite) TestRemoveRule_CrossTenantDenied() {
	ruleID := uuid.New()
	foreign := suite.ownedItem()
	foreign.OrganizationID = uuid.New()
	rule := &models.CompatibilityRule{
		BaseModel:       models.BaseModel{ID: ruleID},
		InventoryItemID: suite.itemID,
		InventoryItem:   *foreign,
	}
	suite.mockRuleRepo.EXPECT().GetByID(ruleID).Return(rule, nil)

	err := suite.compatibilityService.RemoveRule(suite.orgID, ruleID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *CompatibilityServiceTestSuite) TestRemoveRule_NotFound() {
	ruleID := uuid.New()
	suite.mockRuleRepo.EXPECT().GetByID(ruleID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.compatibilityService.RemoveRule(suite.orgID, ruleID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *CompatibilityServiceTestSuite) TestGetRulesForItem_Success() {
	model := "D6T"
	modelNorm := "d6t"
	rules := []models.CompatibilityRule{
		{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			InventoryItemID:  suite.itemID,
			Manufacturer:     "Caterpillar",
			Model:            &model,
			ManufacturerNorm: "caterpillar",
			ModelNorm:        &modelNorm,
			MatchType:        models.MatchTypeExact,
		},
	}
	suite.mockItemRepo.EXPECT().GetByID(suite.itemID).Return(suite.ownedItem(), nil)
	suite.mockRuleRepo.EXPECT().GetByItemID(suite.itemID).Return(rules, nil)

	resp, err := suite.compatibilityService.GetRulesForItem(suite.orgID, suite.itemID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Caterpillar", resp[0].Manufacturer)
	assert.Equal(suite.T(), models.MatchTypeExact, resp[0].MatchType)
}

func TestCompatibilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompatibilityServiceTestSuite))
}
