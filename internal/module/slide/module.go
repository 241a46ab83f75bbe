package slide

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// SlideModule implements the app.Module interface for the slide resource.
type SlideModule struct {
	handler *SlideHandler
	authn   gin.HandlerFunc
}

// NewModule creates a SlideModule.
func NewModule(h *SlideHandler, authn gin.HandlerFunc) *SlideModule {
	if h == nil {
		panic("slide.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("slide.NewModule: authn must not be nil")
	}
	return &SlideModule{handler: h, authn: authn}
}

// RegisterRoutes registers slide routes.
func (m *SlideModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/slides", m.handler.List)
	api.GET("/slides/organization/:id", m.handler.ListByOrganization)
	api.GET("/slides/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/slides", m.handler.Create)
	admin.PUT("/slides/:id", m.handler.Update)
	admin.DELETE("/slides/:id", m.handler.Delete)
}
