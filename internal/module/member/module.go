package member

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// MemberModule implements the app.Module interface for the member resource.
type MemberModule struct {
	handler *MemberHandler
	authn   gin.HandlerFunc
}

// NewModule creates a MemberModule.
func NewModule(h *MemberHandler, authn gin.HandlerFunc) *MemberModule {
	if h == nil {
		panic("member.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("member.NewModule: authn must not be nil")
	}
	return &MemberModule{handler: h, authn: authn}
}

// RegisterRoutes registers member routes.
func (m *MemberModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/members", m.handler.List)
	api.GET("/members/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/members", m.handler.Create)
	admin.PUT("/members/:id", m.handler.Update)
	admin.DELETE("/members/:id", m.handler.Delete)
}
