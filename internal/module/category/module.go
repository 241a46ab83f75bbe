package category

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// CategoryModule implements the app.Module interface for the category resource.
type CategoryModule struct {
	handler *CategoryHandler
	authn   gin.HandlerFunc
}

// NewModule creates a CategoryModule.
func NewModule(h *CategoryHandler, authn gin.HandlerFunc) *CategoryModule {
	if h == nil {
		panic("category.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("category.NewModule: authn must not be nil")
	}
	return &CategoryModule{handler: h, authn: authn}
}

// RegisterRoutes registers category routes.
func (m *CategoryModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/categories", m.handler.List)
	api.GET("/categories/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/categories", m.handler.Create)
	admin.PUT("/categories/:id", m.handler.Update)
	admin.DELETE("/categories/:id", m.handler.Delete)
}
