package routes

import (
	"fleet-parts-backend/internal/api/handlers"
	"fleet-parts-backend/internal/api/middleware"
	"fleet-parts-backend/internal/config"
	"fleet-parts-backend/internal/repository"
	"fleet-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	equipmentRepo := repository.NewEquipmentRepository(db)
	itemRepo := repository.NewInventoryItemRepository(db)
	ruleRepo := repository.NewCompatibilityRuleRepository(db)
	identifierRepo := repository.NewPartIdentifierRepository(db)
	groupRepo := repository.NewAlternateGroupRepository(db)

	// Initialize services
	compatibilityService := service.NewCompatibilityService(ruleRepo, itemRepo, equipmentRepo, validator)
	alternateService := service.NewAlternateService(groupRepo, identifierRepo, itemRepo, validator)
	identifierService := service.NewPartIdentifierService(identifierRepo, itemRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	compatibilityHandler := handlers.NewCompatibilityHandler(compatibilityService)
	alternateHandler := handlers.NewAlternateHandler(alternateService)
	identifierHandler := handlers.NewPartIdentifierHandler(identifierService)

	// Health and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		org := v1.Group("/organizations/:org_id")
		{
			// Compatibility rules
			org.GET("/inventory-items/:item_id/compatibility-rules", compatibilityHandler.GetRules)
			org.POST("/inventory-items/:item_id/compatibility-rules", compatibilityHandler.AddRule)
			org.PUT("/inventory-items/:item_id/compatibility-rules", compatibilityHandler.BulkReplaceRules)
			org.DELETE("/compatibility-rules/:rule_id", compatibilityHandler.RemoveRule)
			org.POST("/compatibility-rules/match-count", compatibilityHandler.CountMatches)
			org.GET("/compatible-parts", compatibilityHandler.GetCompatibleParts)

			// Alternates
			org.GET("/alternates", alternateHandler.GetAlternatesForPartNumber)
			org.GET("/inventory-items/:item_id/alternates", alternateHandler.GetAlternatesForInventoryItem)
			org.GET("/alternate-groups", alternateHandler.ListGroups)
			org.POST("/alternate-groups", alternateHandler.CreateGroup)
			org.GET("/alternate-groups/:group_id", alternateHandler.GetGroup)
			org.PATCH("/alternate-groups/:group_id", alternateHandler.UpdateGroup)
			org.DELETE("/alternate-groups/:group_id", alternateHandler.DeleteGroup)
			org.POST("/alternate-groups/:group_id/members", alternateHandler.AddMember)
			org.DELETE("/alternate-groups/:group_id/members/:member_id", alternateHandler.RemoveMember)

			// Part identifiers
			org.GET("/part-identifiers", identifierHandler.Search)
			org.POST("/part-identifiers", identifierHandler.Create)
		}
	}

	return router
}
