package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// ContactModule implements the app.Module interface for the contact resource.
type ContactModule struct {
	handler *ContactHandler
	authn   gin.HandlerFunc
}

// NewModule creates a ContactModule.
func NewModule(h *ContactHandler, authn gin.HandlerFunc) *ContactModule {
	if h == nil {
		panic("contact.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("contact.NewModule: authn must not be nil")
	}
	return &ContactModule{handler: h, authn: authn}
}

// RegisterRoutes registers contact routes. Submission is public; everything
// else is for administrators reviewing the inbox.
func (m *ContactModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contacts", m.handler.Create)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.GET("/contacts", m.handler.List)
	admin.GET("/contacts/:id", m.handler.Get)
	admin.PUT("/contacts/:id", m.handler.Update)
	admin.DELETE("/contacts/:id", m.handler.Delete)
}
