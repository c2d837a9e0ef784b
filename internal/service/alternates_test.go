package service_test

import (
	"context"
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

type AlternateServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockGroupRepo      *mocks.MockAlternateGroupRepositoryInterface
	mockIdentifierRepo *mocks.MockPartIdentifierRepositoryInterface
	mockItemRepo       *mocks.MockInventoryItemRepositoryInterface
	alternateService   *service.AlternateService
	validator          *validator.Validate

	orgID   uuid.UUID
	groupID uuid.UUID
}

func (suite *AlternateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockAlternateGroupRepositoryInterface(suite.ctrl)
	suite.mockIdentifierRepo = mocks.NewMockPartIdentifierRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockInventoryItemRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.alternateService = service.NewAlternateService(
		suite.mockGroupRepo, suite.mockIdentifierRepo, suite.mockItemRepo, suite.validator,
	)
	suite.orgID = uuid.New()
	suite.groupID = uuid.New()
}

func (suite *AlternateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AlternateServiceTestSuite) ownedGroup(status models.GroupStatus) *models.AlternateGroup {
	return &models.AlternateGroup{
		BaseModel:      models.BaseModel{ID: suite.groupID},
		OrganizationID: suite.orgID,
		Name:           "Hydraulic Filter Alternates",
		Status:         status,
	}
}

func (suite *AlternateServiceTestSuite) TestCreateGroup_StartsUnverified() {
	suite.mockGroupRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(group *models.AlternateGroup) error {
		assert.Equal(suite.T(), suite.orgID, group.OrganizationID)
		assert.Equal(suite.T(), models.GroupStatusUnverified, group.Status)
		group.ID = suite.groupID
		return nil
	})

	resp, err := suite.alternateService.CreateGroup(suite.orgID, &service.CreateGroupRequest{
		Name:        "Hydraulic Filter Alternates",
		Description: "Filters interchangeable across D6 variants",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.GroupStatusUnverified, resp.Status)
	assert.Empty(suite.T(), resp.VerifiedBy)
	assert.Nil(suite.T(), resp.VerifiedAt)
}

func (suite *AlternateServiceTestSuite) TestCreateGroup_NameRequired() {
	resp, err := suite.alternateService.CreateGroup(suite.orgID, &service.CreateGroupRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	// Struct-tag failures surface as domain validation errors, not as
	// opaque internal errors
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "name")
}

func (suite *AlternateServiceTestSuite) TestUpdateGroup_VerifyStampsVerifier() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockGroupRepo.EXPECT().Update(suite.groupID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), models.GroupStatusVerified, updates["status"])
			assert.Equal(suite.T(), "mechanic-jane", updates["verified_by"])
			assert.Contains(suite.T(), updates, "verified_at")
			return nil
		})
	suite.mockGroupRepo.EXPECT().GetWithMembers(suite.groupID).Return(suite.ownedGroup(models.GroupStatusVerified), nil)

	status := models.GroupStatusVerified
	resp, err := suite.alternateService.UpdateGroup(suite.orgID, suite.groupID, &service.UpdateGroupRequest{
		Status:     &status,
		VerifiedBy: "mechanic-jane",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.GroupStatusVerified, resp.Status)
}

func (suite *AlternateServiceTestSuite) TestUpdateGroup_VerifyRequiresVerifier() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	// No Update expectation: a verify without a verifier never writes

	status := models.GroupStatusVerified
	resp, err := suite.alternateService.UpdateGroup(suite.orgID, suite.groupID, &service.UpdateGroupRequest{
		Status:     &status,
		VerifiedBy: "   ",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "verified_by")
}

func (suite *AlternateServiceTestSuite) TestUpdateGroup_DeprecatedIsTerminal() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusDeprecated), nil)

	status := models.GroupStatusVerified
	resp, err := suite.alternateService.UpdateGroup(suite.orgID, suite.groupID, &service.UpdateGroupRequest{
		Status: &status,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AlternateServiceTestSuite) TestUpdateGroup_UnknownStatusRejected() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)

	status := models.GroupStatus("retired")
	resp, err := suite.alternateService.UpdateGroup(suite.orgID, suite.groupID, &service.UpdateGroupRequest{
		Status: &status,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AlternateServiceTestSuite) TestUpdateGroup_NoFieldsSkipsWrite() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	// No Update expectation: an empty patch never writes
	suite.mockGroupRepo.EXPECT().GetWithMembers(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)

	resp, err := suite.alternateService.UpdateGroup(suite.orgID, suite.groupID, &service.UpdateGroupRequest{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AlternateServiceTestSuite) TestGetGroupByID_CrossTenantReportsNotFound() {
	foreign := suite.ownedGroup(models.GroupStatusUnverified)
	foreign.OrganizationID = uuid.New()
	suite.mockGroupRepo.EXPECT().GetWithMembers(suite.groupID).Return(foreign, nil)

	resp, err := suite.alternateService.GetGroupByID(suite.orgID, suite.groupID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	// Existence must not leak across tenants
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.False(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *AlternateServiceTestSuite) TestListGroups_PaginationNormalized() {
	suite.mockGroupRepo.EXPECT().GetByOrganizationID(suite.orgID, 50, 0).Return([]models.AlternateGroup{}, int64(0), nil)

	resp, err := suite.alternateService.ListGroups(suite.orgID, -1, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 50, resp.PageSize)
}

func (suite *AlternateServiceTestSuite) TestAddIdentifierToGroup_Success() {
	identifierID := uuid.New()
	identifier := &models.PartIdentifier{
		BaseModel:      models.BaseModel{ID: identifierID},
		OrganizationID: suite.orgID,
		RawValue:       "1R-0750",
		NormValue:      "1r-0750",
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockIdentifierRepo.EXPECT().GetByID(identifierID).Return(identifier, nil)
	suite.mockGroupRepo.EXPECT().AddMember(gomock.Any()).DoAndReturn(func(member *models.AlternateGroupMember) error {
		assert.Equal(suite.T(), suite.groupID, member.GroupID)
		assert.Equal(suite.T(), identifierID, *member.PartIdentifierID)
		assert.Nil(suite.T(), member.InventoryItemID)
		return nil
	})
	suite.mockGroupRepo.EXPECT().GetWithMembers(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)

	resp, err := suite.alternateService.AddIdentifierToGroup(suite.orgID, suite.groupID, identifierID, true, "")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AlternateServiceTestSuite) TestAddIdentifierToGroup_DuplicateIsNoOp() {
	identifierID := uuid.New()
	identifier := &models.PartIdentifier{
		BaseModel:      models.BaseModel{ID: identifierID},
		OrganizationID: suite.orgID,
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockIdentifierRepo.EXPECT().GetByID(identifierID).Return(identifier, nil)
	suite.mockGroupRepo.EXPECT().AddMember(gomock.Any()).Return(gorm.ErrDuplicatedKey)
	suite.mockGroupRepo.EXPECT().GetWithMembers(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)

	resp, err := suite.alternateService.AddIdentifierToGroup(suite.orgID, suite.groupID, identifierID, false, "")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AlternateServiceTestSuite) TestAddIdentifierToGroup_CrossTenantIdentifierDenied() {
	identifierID := uuid.New()
	identifier := &models.PartIdentifier{
		BaseModel:      models.BaseModel{ID: identifierID},
		OrganizationID: uuid.New(),
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockIdentifierRepo.EXPECT().GetByID(identifierID).Return(identifier, nil)

	resp, err := suite.alternateService.AddIdentifierToGroup(suite.orgID, suite.groupID, identifierID, false, "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *AlternateServiceTestSuite) TestAddInventoryItemToGroup_CrossTenantItemDenied() {
	itemID := uuid.New()
	item := &models.InventoryItem{
		BaseModel:      models.BaseModel{ID: itemID},
		OrganizationID: uuid.New(),
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockItemRepo.EXPECT().GetByID(itemID).Return(item, nil)

	resp, err := suite.alternateService.AddInventoryItemToGroup(suite.orgID, suite.groupID, itemID, false, "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *AlternateServiceTestSuite) TestRemoveGroupMember_WrongGroupReportsNotFound() {
	memberID := uuid.New()
	member := &models.AlternateGroupMember{
		BaseModel: models.BaseModel{ID: memberID},
		GroupID:   uuid.New(), // belongs to another group
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockGroupRepo.EXPECT().GetMemberByID(memberID).Return(member, nil)

	err := suite.alternateService.RemoveGroupMember(suite.orgID, suite.groupID, memberID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *AlternateServiceTestSuite) TestRemoveGroupMember_Success() {
	memberID := uuid.New()
	member := &models.AlternateGroupMember{
		BaseModel: models.BaseModel{ID: memberID},
		GroupID:   suite.groupID,
	}
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockGroupRepo.EXPECT().GetMemberByID(memberID).Return(member, nil)
	suite.mockGroupRepo.EXPECT().RemoveMember(memberID).Return(nil)

	err := suite.alternateService.RemoveGroupMember(suite.orgID, suite.groupID, memberID)

	assert.NoError(suite.T(), err)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_BlankReturnsEmpty() {
	// No repo expectations: blank input short-circuits
	results, err := suite.alternateService.GetAlternatesForPartNumber(context.Background(), suite.orgID, "   ")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_CancelledBeforeQuery() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := suite.alternateService.GetAlternatesForPartNumber(ctx, suite.orgID, "1R-0750")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_CancelledDuringQuery() {
	ctx, cancel := context.WithCancel(context.Background())
	suite.mockIdentifierRepo.EXPECT().GetByNormValue(gomock.Any(), suite.orgID, "1r-0750").DoAndReturn(
		func(ctx context.Context, orgID uuid.UUID, normValue string) (*models.PartIdentifier, error) {
			cancel()
			return nil, context.Canceled
		})

	results, err := suite.alternateService.GetAlternatesForPartNumber(ctx, suite.orgID, "1R-0750")

	// A superseded lookup is not a fault
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_RealErrorPropagates() {
	// The context is alive, so a cancellation-looking error is a real failure
	suite.mockIdentifierRepo.EXPECT().GetByNormValue(gomock.Any(), suite.orgID, "1r-0750").
		Return(nil, errors.New("driver: context canceled"))

	results, err := suite.alternateService.GetAlternatesForPartNumber(context.Background(), suite.orgID, "1R-0750")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), results)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_UnknownNumberReturnsEmpty() {
	suite.mockIdentifierRepo.EXPECT().GetByNormValue(gomock.Any(), suite.orgID, "no-such-pn").
		Return(nil, gorm.ErrRecordNotFound)

	results, err := suite.alternateService.GetAlternatesForPartNumber(context.Background(), suite.orgID, "NO-SUCH-PN")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForPartNumber_ExcludesQueriedPart() {
	queriedID := uuid.New()
	alternateID := uuid.New()
	queried := &models.PartIdentifier{
		BaseModel:      models.BaseModel{ID: queriedID},
		OrganizationID: suite.orgID,
		RawValue:       "1R-0750",
		NormValue:      "1r-0750",
	}
	group := suite.ownedGroup(models.GroupStatusVerified)
	group.Members = []models.AlternateGroupMember{
		{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			GroupID:          suite.groupID,
			PartIdentifierID: &queriedID,
			PartIdentifier:   queried,
			IsPrimary:        true,
		},
		{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			GroupID:          suite.groupID,
			PartIdentifierID: &alternateID,
			PartIdentifier: &models.PartIdentifier{
				BaseModel:      models.BaseModel{ID: alternateID},
				OrganizationID: suite.orgID,
				RawValue:       "P551670",
				NormValue:      "p551670",
			},
		},
	}
	suite.mockIdentifierRepo.EXPECT().GetByNormValue(gomock.Any(), suite.orgID, "1r-0750").Return(queried, nil)
	suite.mockGroupRepo.EXPECT().GetGroupsByIdentifierIDs(gomock.Any(), []uuid.UUID{queriedID}).
		Return([]models.AlternateGroup{*group}, nil)

	results, err := suite.alternateService.GetAlternatesForPartNumber(context.Background(), suite.orgID, " 1R-0750 ")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "P551670", results[0].PartIdentifier.RawValue)
	assert.Equal(suite.T(), models.GroupStatusVerified, results[0].GroupStatus)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForInventoryItem_MergesAndExcludesSelf() {
	itemID := uuid.New()
	linkedIdentifierID := uuid.New()
	otherItemID := uuid.New()
	item := &models.InventoryItem{
		BaseModel:      models.BaseModel{ID: itemID},
		OrganizationID: suite.orgID,
		Name:           "Hydraulic Filter",
	}
	linkedIdentifier := models.PartIdentifier{
		BaseModel:       models.BaseModel{ID: linkedIdentifierID},
		OrganizationID:  suite.orgID,
		InventoryItemID: &itemID,
		RawValue:        "1R-0750",
	}

	// The same group reachable through both paths must be processed once
	group := suite.ownedGroup(models.GroupStatusUnverified)
	group.Members = []models.AlternateGroupMember{
		{
			BaseModel:       models.BaseModel{ID: uuid.New()},
			GroupID:         suite.groupID,
			InventoryItemID: &itemID, // the queried item itself
		},
		{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			GroupID:          suite.groupID,
			PartIdentifierID: &linkedIdentifierID, // same part, via identifier
		},
		{
			BaseModel:       models.BaseModel{ID: uuid.New()},
			GroupID:         suite.groupID,
			InventoryItemID: &otherItemID,
			InventoryItem: &models.InventoryItem{
				BaseModel: models.BaseModel{ID: otherItemID},
				Name:      "Donaldson Filter", SKU: "P551670",
			},
		},
	}

	suite.mockItemRepo.EXPECT().GetByID(itemID).Return(item, nil)
	suite.mockIdentifierRepo.EXPECT().GetByInventoryItemID(itemID).Return([]models.PartIdentifier{linkedIdentifier}, nil)
	suite.mockGroupRepo.EXPECT().GetGroupsByInventoryItemID(gomock.Any(), itemID).Return([]models.AlternateGroup{*group}, nil)
	suite.mockGroupRepo.EXPECT().GetGroupsByIdentifierIDs(gomock.Any(), []uuid.UUID{linkedIdentifierID}).
		Return([]models.AlternateGroup{*group}, nil)

	results, err := suite.alternateService.GetAlternatesForInventoryItem(suite.orgID, itemID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "Donaldson Filter", results[0].InventoryItem.Name)
}

func (suite *AlternateServiceTestSuite) TestGetAlternatesForInventoryItem_CrossTenantDenied() {
	itemID := uuid.New()
	item := &models.InventoryItem{
		BaseModel:      models.BaseModel{ID: itemID},
		OrganizationID: uuid.New(),
	}
	suite.mockItemRepo.EXPECT().GetByID(itemID).Return(item, nil)

	results, err := suite.alternateService.GetAlternatesForInventoryItem(suite.orgID, itemID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), results)
	assert.True(suite.T(), apperrors.IsAccessDenied(err))
}

func (suite *AlternateServiceTestSuite) TestDeleteGroup_Success() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.groupID).Return(suite.ownedGroup(models.GroupStatusUnverified), nil)
	suite.mockGroupRepo.EXPECT().Delete(suite.groupID).Return(nil)

	err := suite.alternateService.DeleteGroup(suite.orgID, suite.groupID)

	assert.NoError(suite.T(), err)
}

func TestAlternateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlternateServiceTestSuite))
}
