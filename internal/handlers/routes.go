package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Health         *HealthCheckHandler
	Recommendation *RecommendationHandler
	Catalog        *CatalogHandler
	FormSchema     *FormSchemaHandler
}

// RegisterRoutes mounts the health check and the versioned API on e
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.POST("/recommend", h.Recommendation.Recommend)

	v1.GET("/categories", h.Catalog.ListCategories)
	v1.GET("/subcategories", h.Catalog.ListSubcategories)
	v1.GET("/brands", h.Catalog.ListBrands)

	v1.GET("/cards", h.Catalog.ListCards)
	v1.GET("/cards/search", h.Catalog.SearchCards)
	v1.GET("/cards/compare", h.Catalog.CompareCards)
	v1.GET("/cards/promotional", h.Catalog.ListPromotionalCards)
	v1.GET("/cards/promotional-banners", h.Catalog.ListPromotionalBanners)
	v1.GET("/cards/:id", h.Catalog.GetCard)

	v1.GET("/form-schema", h.FormSchema.GetFormSchema)
}
