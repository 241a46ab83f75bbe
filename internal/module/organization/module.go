package organization

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// OrganizationModule implements the app.Module interface for organizations.
type OrganizationModule struct {
	handler *OrganizationHandler
	authn   gin.HandlerFunc
}

// NewModule creates an OrganizationModule.
func NewModule(h *OrganizationHandler, authn gin.HandlerFunc) *OrganizationModule {
	if h == nil {
		panic("organization.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("organization.NewModule: authn must not be nil")
	}
	return &OrganizationModule{handler: h, authn: authn}
}

// RegisterRoutes registers organization routes. The public profile route is
// registered before the parameterized one so "public" is never parsed as an id.
func (m *OrganizationModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/organizations", m.handler.List)
	api.GET("/organizations/public", m.handler.ListPublic)
	api.GET("/organizations/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/organizations", m.handler.Create)
	admin.PUT("/organizations/:id", m.handler.Update)
	admin.DELETE("/organizations/:id", m.handler.Delete)
}
