package handlers

import (
	"net/http"
	"strconv"

	apperrors "fleet-parts-backend/internal/errors"
	"fleet-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AlternateHandler handles HTTP requests for alternate group operations
type AlternateHandler struct {
	alternateService service.AlternateServiceInterface
}

// NewAlternateHandler creates a new alternate handler
func NewAlternateHandler(alternateService service.AlternateServiceInterface) *AlternateHandler {
	return &AlternateHandler{
		alternateService: alternateService,
	}
}

// CreateGroup handles POST /organizations/:org_id/alternate-groups
// @Summary Create an alternate group
// @Tags alternates
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group body service.CreateGroupRequest true "Group to create"
// @Success 201 {object} service.AlternateGroupResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /organizations/{org_id}/alternate-groups [post]
func (h *AlternateHandler) CreateGroup(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	group, err := h.alternateService.CreateGroup(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup handles PATCH /organizations/:org_id/alternate-groups/:group_id
// @Summary Partially update an alternate group
// @Tags alternates
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group_id path string true "Group ID"
// @Param group body service.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} service.AlternateGroupResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /organizations/{org_id}/alternate-groups/{group_id} [patch]
func (h *AlternateHandler) UpdateGroup(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}
	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	group, err := h.alternateService.UpdateGroup(orgID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /organizations/:org_id/alternate-groups/:group_id
// @Summary Delete an alternate group and its members
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group_id path string true "Group ID"
// @Success 204 "Group deleted"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /organizations/{org_id}/alternate-groups/{group_id} [delete]
func (h *AlternateHandler) DeleteGroup(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}

	if err := h.alternateService.DeleteGroup(orgID, groupID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetGroup handles GET /organizations/:org_id/alternate-groups/:group_id
// @Summary Get an alternate group with its members
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group_id path string true "Group ID"
// @Success 200 {object} service.AlternateGroupResponse
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /organizations/{org_id}/alternate-groups/{group_id} [get]
func (h *AlternateHandler) GetGroup(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}

	group, err := h.alternateService.GetGroupByID(orgID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// ListGroups handles GET /organizations/:org_id/alternate-groups
// @Summary List alternate groups
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.AlternateGroupListResponse
// @Router /organizations/{org_id}/alternate-groups [get]
func (h *AlternateHandler) ListGroups(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	groups, err := h.alternateService.ListGroups(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// AddMember handles POST /organizations/:org_id/alternate-groups/:group_id/members
// @Summary Add a part identifier or inventory item to a group
// @Description Adds a member referencing exactly one of part_identifier_id or inventory_item_id. Adding an existing member is a no-op.
// @Tags alternates
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group_id path string true "Group ID"
// @Param member body service.AddGroupMemberRequest true "Member to add"
// @Success 200 {object} service.AlternateGroupResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /organizations/{org_id}/alternate-groups/{group_id}/members [post]
func (h *AlternateHandler) AddMember(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}
	var req service.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PartIdentifierID == nil && req.InventoryItemID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrGroupMemberReferenceRequired.Error()})
		return
	}
	if req.PartIdentifierID != nil && req.InventoryItemID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrGroupMemberReferenceConflict.Error()})
		return
	}

	var group *service.AlternateGroupResponse
	var err error
	if req.PartIdentifierID != nil {
		group, err = h.alternateService.AddIdentifierToGroup(orgID, groupID, *req.PartIdentifierID, req.IsPrimary, req.Notes)
	} else {
		group, err = h.alternateService.AddInventoryItemToGroup(orgID, groupID, *req.InventoryItemID, req.IsPrimary, req.Notes)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// RemoveMember handles DELETE /organizations/:org_id/alternate-groups/:group_id/members/:member_id
// @Summary Remove a member from a group
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param group_id path string true "Group ID"
// @Param member_id path string true "Member ID"
// @Success 204 "Member removed"
// @Failure 404 {object} ErrorResponse "Group or member not found"
// @Router /organizations/{org_id}/alternate-groups/{group_id}/members/{member_id} [delete]
func (h *AlternateHandler) RemoveMember(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	groupID, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(c, "member_id")
	if !ok {
		return
	}

	if err := h.alternateService.RemoveGroupMember(orgID, groupID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAlternatesForPartNumber handles GET /organizations/:org_id/alternates
// @Summary Look up interchangeable parts for a part number
// @Description A blank part number returns an empty list. The request context is honored as a cancellation token: a superseded request returns an empty list with no error.
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param part_number query string true "Part number to look up"
// @Success 200 {array} service.AlternateResult
// @Router /organizations/{org_id}/alternates [get]
func (h *AlternateHandler) GetAlternatesForPartNumber(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}

	results, err := h.alternateService.GetAlternatesForPartNumber(c.Request.Context(), orgID, c.Query("part_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetAlternatesForInventoryItem handles GET /organizations/:org_id/inventory-items/:item_id/alternates
// @Summary Look up interchangeable parts for an inventory item
// @Tags alternates
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param item_id path string true "Inventory item ID"
// @Success 200 {array} service.AlternateResult
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /organizations/{org_id}/inventory-items/{item_id}/alternates [get]
func (h *AlternateHandler) GetAlternatesForInventoryItem(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}

	results, err := h.alternateService.GetAlternatesForInventoryItem(orgID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
