package user

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// UserModule implements the app.Module interface for the user resource.
// Account creation goes through the auth module's register route.
type UserModule struct {
	handler *UserHandler
	authn   gin.HandlerFunc
}

// NewModule creates a UserModule.
func NewModule(h *UserHandler, authn gin.HandlerFunc) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("user.NewModule: authn must not be nil")
	}
	return &UserModule{handler: h, authn: authn}
}

// RegisterRoutes registers user routes. Listing is admin-only; per-user
// routes allow the account owner or an administrator.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup) {
	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.GET("/users", m.handler.List)

	self := api.Group("", m.authn, middleware.SelfOrAdmin(middleware.PathID("id")))
	self.GET("/users/:id", m.handler.Get)
	self.PUT("/users/:id", m.handler.Update)
	self.DELETE("/users/:id", m.handler.Delete)
}
