package handlers

import (
	"net/http"

	"fleet-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartIdentifierHandler handles HTTP requests for part identifier operations
type PartIdentifierHandler struct {
	identifierService service.PartIdentifierServiceInterface
}

// NewPartIdentifierHandler creates a new part identifier handler
func NewPartIdentifierHandler(identifierService service.PartIdentifierServiceInterface) *PartIdentifierHandler {
	return &PartIdentifierHandler{
		identifierService: identifierService,
	}
}

// Create handles POST /organizations/:org_id/part-identifiers
// @Summary Catalog a part identifier
// @Tags part-identifiers
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param identifier body service.CreatePartIdentifierRequest true "Identifier to create"
// @Success 201 {object} service.PartIdentifierResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Identifier already exists"
// @Router /organizations/{org_id}/part-identifiers [post]
func (h *PartIdentifierHandler) Create(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}
	var req service.CreatePartIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	identifier, err := h.identifierService.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, identifier)
}

// Search handles GET /organizations/:org_id/part-identifiers
// @Summary Search part identifiers by prefix
// @Description A blank term returns an empty list. The request context is honored as a cancellation token.
// @Tags part-identifiers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param q query string true "Search term"
// @Success 200 {array} service.PartIdentifierResponse
// @Router /organizations/{org_id}/part-identifiers [get]
func (h *PartIdentifierHandler) Search(c *gin.Context) {
	orgID, ok := pathUUID(c, "org_id")
	if !ok {
		return
	}

	identifiers, err := h.identifierService.Search(c.Request.Context(), orgID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, identifiers)
}
