package handlers

import (
	"net/http"

	"fleet-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompatibilityHandler handles HTTP requests for compatibility rule operations
type CompatibilityHandler struct {
	compatibilityService service.CompatibilityServiceInterface
}

// NewCompatibilityHandler creates a new compatibility handler
func NewCompatibilityHandler(compatibilityService service.CompatibilityServiceInterface) *CompatibilityHandler {
	return &CompatibilityHandler{
		compatibilityService: compatibilityService,
	}
}

// BulkReplaceRequest represents the payload for replacing an item's rule set
type BulkReplaceRequest struct {
	Rules []service.RuleRequest `json:"rules"`
}

// MatchCountRequest represents the payload for previewing a rule set's reach
type MatchCountRequest struct {
	Rules []service.RuleRequest `json:"rules"`
}

// MatchCountResponse reports how many equipment records a rule set covers
type MatchCountResponse struct {
	Count int `json:"count"`
}

// GetRules handles GET /organizations/:org_id/inventory-items/:item_id/compatibility-rules
// @Summary List compatibility rules for an inventory item
// @Tags compatibility
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param item_id path string true "Inventory item ID"
// @Success 200 {array} service.CompatibilityRuleResponse
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /organizations/{org_id}/inventory-items/{item_id}/compatibility-rules [get]
func (h *CompatibilityHandler) GetRules(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}

	rules, err := h.compatibilityService.GetRulesForItem(orgID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// AddRule handles POST /organizations/:org_id/inventory-items/:item_id/compatibility-rules
// @Summary Add a compatibility rule to an inventory item
// @Tags compatibility
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param item_id path string true "Inventory item ID"
// @Param rule body service.RuleRequest true "Rule to add"
// @Success 201 {object} service.CompatibilityRuleResponse
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Failure 409 {object} ErrorResponse "Duplicate rule"
// @Router /organizations/{org_id}/inventory-items/{item_id}/compatibility-rules [post]
func (h *CompatibilityHandler) AddRule(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	var req service.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rule, err := h.compatibilityService.AddRule(orgID, itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// BulkReplaceRules handles PUT /organizations/:org_id/inventory-items/:item_id/compatibility-rules
// @Summary Atomically replace an inventory item's entire rule set
// @Tags compatibility
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param item_id path string true "Inventory item ID"
// @Param rules body BulkReplaceRequest true "Replacement rule set"
// @Success 200 {object} service.BulkReplaceResponse
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Router /organizations/{org_id}/inventory-items/{item_id}/compatibility-rules [put]
func (h *CompatibilityHandler) BulkReplaceRules(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	var req BulkReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.compatibilityService.BulkReplaceRules(orgID, itemID, req.Rules)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveRule handles DELETE /organizations/:org_id/compatibility-rules/:rule_id
// @Summary Remove a compatibility rule
// @Tags compatibility
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param rule_id path string true "Rule ID"
// @Success 204 "Rule removed"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Router /organizations/{org_id}/compatibility-rules/{rule_id} [delete]
func (h *CompatibilityHandler) RemoveRule(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	ruleID, ok := pathUUID(c, "rule_id")
	if !ok {
		return
	}

	if err := h.compatibilityService.RemoveRule(orgID, ruleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CountMatches handles POST /organizations/:org_id/compatibility-rules/match-count
// @Summary Preview how many equipment records a candidate rule set covers
// @Tags compatibility
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param rules body MatchCountRequest true "Candidate rule set"
// @Success 200 {object} MatchCountResponse
// @Router /organizations/{org_id}/compatibility-rules/match-count [post]
func (h *CompatibilityHandler) CountMatches(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	var req MatchCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	count, err := h.compatibilityService.CountEquipmentMatches(orgID, req.Rules)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MatchCountResponse{Count: count})
}

// GetCompatibleParts handles GET /organizations/:org_id/compatible-parts
// @Summary List inventory items compatible with a manufacturer/model
// @Tags compatibility
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param manufacturer query string true "Equipment manufacturer"
// @Param model query string false "Equipment model"
// @Success 200 {array} service.CompatiblePartResponse
// @Router /organizations/{org_id}/compatible-parts [get]
func (h *CompatibilityHandler) GetCompatibleParts(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}

	parts, err := h.compatibilityService.GetCompatiblePartsForMakeModel(orgID, c.Query("manufacturer"), c.Query("model"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}
