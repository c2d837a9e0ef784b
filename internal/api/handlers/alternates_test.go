package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet-parts-backend/internal/api/handlers"
	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/mocks"
	"fleet-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AlternateHandlerTestSuite defines the test suite for AlternateHandler
type AlternateHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockAlternateServiceInterface
	handler *handlers.AlternateHandler
	router  *gin.Engine
	orgID   uuid.UUID
	groupID uuid.UUID
}

func (suite *AlternateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockAlternateServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAlternateHandler(suite.mockSvc)

	suite.router = gin.New()
	org := suite.router.Group("/organizations/:org_id")
	org.POST("/alternate-groups", suite.handler.CreateGroup)
	org.GET("/alternate-groups", suite.handler.ListGroups)
	org.GET("/alternate-groups/:group_id", suite.handler.GetGroup)
	org.PATCH("/alternate-groups/:group_id", suite.handler.UpdateGroup)
	org.DELETE("/alternate-groups/:group_id", suite.handler.DeleteGroup)
	org.POST("/alternate-groups/:group_id/members", suite.handler.AddMember)
	org.DELETE("/alternate-groups/:group_id/members/:member_id", suite.handler.RemoveMember)
	org.GET("/alternates", suite.handler.GetAlternatesForPartNumber)
	org.GET("/inventory-items/:item_id/alternates", suite.handler.GetAlternatesForInventoryItem)

	suite.orgID = uuid.New()
	suite.groupID = uuid.New()
}

func (suite *AlternateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AlternateHandlerTestSuite) groupPath() string {
	return "/organizations/" + suite.orgID.String() + "/alternate-groups/" + suite.groupID.String()
}

func (suite *AlternateHandlerTestSuite) TestCreateGroup_Success() {
	resp := &service.AlternateGroupResponse{
		ID:     suite.groupID,
		Name:   "1R-0750 equivalents",
		Status: models.GroupStatusUnverified,
	}
	suite.mockSvc.EXPECT().CreateGroup(suite.orgID, gomock.Any()).Return(resp, nil)

	body := `{"name":"1R-0750 equivalents"}`
	req := httptest.NewRequest(http.MethodPost,
		"/organizations/"+suite.orgID.String()+"/alternate-groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.AlternateGroupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.GroupStatusUnverified, got.Status)
}

func (suite *AlternateHandlerTestSuite) TestCreateGroup_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost,
		"/organizations/"+suite.orgID.String()+"/alternate-groups", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid request body")
}

func (suite *AlternateHandlerTestSuite) TestCreateGroup_EmptyName() {
	suite.mockSvc.EXPECT().CreateGroup(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required"))

	body := `{"name":""}`
	req := httptest.NewRequest(http.MethodPost,
		"/organizations/"+suite.orgID.String()+"/alternate-groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	// A missing required field is a bad request with the field named, never
	// an internal error
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "name")
	assert.NotContains(suite.T(), w.Body.String(), "internal server error")
}

func (suite *AlternateHandlerTestSuite) TestGetGroup_NotFound() {
	suite.mockSvc.EXPECT().GetGroupByID(suite.orgID, suite.groupID).
		Return(nil, apperrors.ErrAlternateGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, suite.groupPath(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AlternateHandlerTestSuite) TestUpdateGroup_DeprecatedIsTerminal() {
	suite.mockSvc.EXPECT().UpdateGroup(suite.orgID, suite.groupID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("status", "a deprecated group cannot change status"))

	body := `{"status":"verified"}`
	req := httptest.NewRequest(http.MethodPatch, suite.groupPath(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "deprecated")
}

func (suite *AlternateHandlerTestSuite) TestDeleteGroup_Success() {
	suite.mockSvc.EXPECT().DeleteGroup(suite.orgID, suite.groupID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, suite.groupPath(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *AlternateHandlerTestSuite) TestListGroups_DefaultPagination() {
	suite.mockSvc.EXPECT().ListGroups(suite.orgID, 1, 50).
		Return(&service.AlternateGroupListResponse{Groups: []service.AlternateGroupResponse{}, Page: 1, PageSize: 50}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/organizations/"+suite.orgID.String()+"/alternate-groups", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AlternateGroupListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 50, got.PageSize)
}

func (suite *AlternateHandlerTestSuite) TestAddMember_Identifier() {
	identifierID := uuid.New()
	suite.mockSvc.EXPECT().AddIdentifierToGroup(suite.orgID, suite.groupID, identifierID, true, "oem").
		Return(&service.AlternateGroupResponse{ID: suite.groupID}, nil)

	body := `{"part_identifier_id":"` + identifierID.String() + `","is_primary":true,"notes":"oem"}`
	req := httptest.NewRequest(http.MethodPost, suite.groupPath()+"/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AlternateHandlerTestSuite) TestAddMember_NoReference() {
	body := `{"is_primary":true}`
	req := httptest.NewRequest(http.MethodPost, suite.groupPath()+"/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), apperrors.ErrGroupMemberReferenceRequired.Error())
}

func (suite *AlternateHandlerTestSuite) TestAddMember_BothReferences() {
	body := `{"part_identifier_id":"` + uuid.New().String() + `","inventory_item_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, suite.groupPath()+"/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), apperrors.ErrGroupMemberReferenceConflict.Error())
}

func (suite *AlternateHandlerTestSuite) TestRemoveMember_Success() {
	memberID := uuid.New()
	suite.mockSvc.EXPECT().RemoveGroupMember(suite.orgID, suite.groupID, memberID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, suite.groupPath()+"/members/"+memberID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *AlternateHandlerTestSuite) TestGetAlternatesForPartNumber_Success() {
	results := []service.AlternateResult{
		{GroupID: suite.groupID, GroupName: "1R-0750 equivalents", GroupStatus: models.GroupStatusVerified},
	}
	suite.mockSvc.EXPECT().GetAlternatesForPartNumber(gomock.Any(), suite.orgID, "1R-0750").Return(results, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/organizations/"+suite.orgID.String()+"/alternates?part_number=1R-0750", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.AlternateResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "1R-0750 equivalents", got[0].GroupName)
}

func (suite *AlternateHandlerTestSuite) TestGetAlternatesForInventoryItem_AccessDenied() {
	itemID := uuid.New()
	suite.mockSvc.EXPECT().GetAlternatesForInventoryItem(suite.orgID, itemID).
		Return(nil, apperrors.ErrInventoryItemAccessDenied)

	req := httptest.NewRequest(http.MethodGet,
		"/organizations/"+suite.orgID.String()+"/inventory-items/"+itemID.String()+"/alternates", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestAlternateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AlternateHandlerTestSuite))
}
