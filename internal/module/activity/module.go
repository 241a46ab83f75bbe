package activity

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// ActivityModule implements the app.Module interface for the activity resource.
type ActivityModule struct {
	handler *ActivityHandler
	authn   gin.HandlerFunc
}

// NewModule creates an ActivityModule.
func NewModule(h *ActivityHandler, authn gin.HandlerFunc) *ActivityModule {
	if h == nil {
		panic("activity.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("activity.NewModule: authn must not be nil")
	}
	return &ActivityModule{handler: h, authn: authn}
}

// RegisterRoutes registers activity routes. Reads are public; mutations
// require an administrator token.
func (m *ActivityModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/activities", m.handler.List)
	api.GET("/activities/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/activities", m.handler.Create)
	admin.PUT("/activities/:id", m.handler.Update)
	admin.DELETE("/activities/:id", m.handler.Delete)
}
