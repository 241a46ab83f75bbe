package news

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// NewsModule implements the app.Module interface for the news resource.
type NewsModule struct {
	handler *NewsHandler
	authn   gin.HandlerFunc
}

// NewModule creates a NewsModule. authn is the token authentication
// middleware guarding the mutation routes.
func NewModule(h *NewsHandler, authn gin.HandlerFunc) *NewsModule {
	if h == nil {
		panic("news.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("news.NewModule: authn must not be nil")
	}
	return &NewsModule{handler: h, authn: authn}
}

// RegisterRoutes registers news routes. Reads are public; mutations require
// an administrator token.
func (m *NewsModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/news", m.handler.List)
	api.GET("/news/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/news", m.handler.Create)
	admin.PUT("/news/:id", m.handler.Update)
	admin.DELETE("/news/:id", m.handler.Delete)
}
